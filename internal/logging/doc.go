// Package logging assembles the structured slog loggers used across
// matchpoint commands.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// exposes attr helpers plus standardized field-name constants so every
// component emits log lines with the same shape. Each CLI invocation is
// tagged with a run correlation ID so batch runs remain traceable.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
