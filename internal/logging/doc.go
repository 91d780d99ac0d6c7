// Package logging constructs slog loggers for cinesift and provides typed
// attribute helpers so call sites stay terse and consistent.
package logging
