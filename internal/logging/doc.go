// Package logging assembles the structured slog loggers used by the mixtape
// commands.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests. Log output goes to stderr (optionally
// mirrored to a file) so command payload streams stay pasteable.
package logging
