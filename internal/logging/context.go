package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithPaneID creates a child logger with a pane_id field
func WithPaneID(ctx context.Context, paneID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("pane_id", paneID).Logger()
	return WithContext(ctx, childLogger)
}

// WithViewID creates a child logger with a view_id field
func WithViewID(ctx context.Context, viewID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("view_id", viewID).Logger()
	return WithContext(ctx, childLogger)
}

// WithScript creates a child logger with a script field
func WithScript(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("script", name).Logger()
	return WithContext(ctx, childLogger)
}
