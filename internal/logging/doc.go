// Package logging assembles structured slog loggers and formatting helpers used
// across xlftools commands.
//
// It owns the console/JSON handlers and level plumbing, and exposes component
// and run-scoped helpers so every diagnostic line carries the command that
// produced it and the run it belongs to. Diagnostics are written to stderr by
// default so report output on stdout stays machine-readable. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging
