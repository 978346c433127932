// Package logging assembles the structured slog loggers used by tailctl.
//
// It owns the text/JSON handler selection and level plumbing, and exposes a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
