// Package logging provides structured logging for FitTrack Core.
//
// It wraps log/slog with service defaults: a configurable level and
// format (JSON or text), and standard service/version attributes on
// every record. Handlers get a component-scoped logger via With().
package logging
