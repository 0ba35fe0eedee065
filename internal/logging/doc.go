// Package logging wires slog with the console and JSON handlers used across
// sheaf. Commands construct the logger from configuration; pipeline code
// derives per-file loggers via With and the standardized field helpers.
package logging
