// Package logger is the public API of treelog. Most users only need
// to import this package.
//
// Loggers are named by dotted paths and form a hierarchy: "foo.bar"
// descends from "foo", which descends from the root logger "". A
// handle is obtained with GetLogger and is cached for the life of the
// process:
//
//	log := logger.GetLogger("db.pool")
//	log.Info("connected", addr)
//
// Whether a record is emitted depends on the effective level of its
// path, resolved by the nearest configured or environment-derived
// ancestor entry (see the resolver package). Explicit configuration
// is a single call:
//
//	logger.SetLevel("db", core.DebugLevel)
//
// Expensive-to-build values can be deferred with Lazy; the thunk only
// runs when the record is accepted:
//
//	log.Trace(logger.Lazy(func() []interface{} {
//	    return []interface{}{"state", dumpState()}
//	}))
//
// The package-level functions delegate to a default Registry that
// reads the process environment and writes to stdout/stderr. Isolated
// registries, built with NewRegistry, give tests and embedded hosts
// their own tables, cache, and sink chain.
package logger
