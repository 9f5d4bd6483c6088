// Package logging assembles the structured slog loggers used across pomelo.
//
// It centralizes level and output plumbing and exposes attr helpers so
// components emit log lines with a consistent shape. The core library code
// accepts a *slog.Logger from its caller and otherwise reports through plain
// error values; prefer these constructors over hand-rolled slog setup.
package logging
