// Package logging provides structured logging for the ocmigrate CLI
// built on log/slog.
//
// The default text handler is optimized for terminal output: it colorizes
// levels and attribute keys when stderr is a TTY (respecting NO_COLOR and
// TERM=dumb) and falls back to plain text otherwise. A JSON handler is
// available for machine consumption, and MultiHandler fans records out to
// several handlers at once (e.g. terminal plus a log file).
package logging
