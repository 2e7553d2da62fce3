// Package logging builds the slog loggers used by the muda command.
//
// It maps the configured level and format onto a text ("console") or JSON
// handler, and offers a no-op logger for tests.
package logging
