// Package logging provides structured logging for tally. It wraps log/slog
// to emit JSON-formatted entries to a log file (or stderr when no directory
// is configured), with child loggers carrying persistent attributes.
package logging
