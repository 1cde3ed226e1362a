package jdwp

import "github.com/go-logr/logr"

// nopLogger is used whenever a caller does not supply a Logger, so that the
// connection's internals never need to nil-check before logging.
func nopLogger() logr.Logger { return logr.Discard() }

// withDefault substitutes the discard sink for a Logger whose sink was never
// set, matching the zero-value-safe logr convention.
func withDefault(l logr.Logger) logr.Logger {
	if l.GetSink() == nil {
		return nopLogger()
	}
	return l
}
