// Package observability carries run-scoped logging context through a
// generation run.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/railsdocs/internal/logfields"
	"git.home.luguber.info/inful/railsdocs/internal/versions"
)

// LogContext holds structured logging context information.
type LogContext struct {
	RunID     string
	Language  string
	Framework string
	Stage     string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	lc := extractLogContext(ctx)
	lc.RunID = runID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithPair adds the version pair being processed to the context.
func WithPair(ctx context.Context, pair versions.Pair) context.Context {
	lc := extractLogContext(ctx)
	lc.Language = pair.Language
	lc.Framework = pair.Framework
	return context.WithValue(ctx, logContextKey, lc)
}

// WithStage adds a stage name to the context.
func WithStage(ctx context.Context, stage string) context.Context {
	lc := extractLogContext(ctx)
	lc.Stage = stage
	return context.WithValue(ctx, logContextKey, lc)
}

func extractLogContext(ctx context.Context) LogContext {
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

// GetContext returns the structured log context from the provided context.
func GetContext(ctx context.Context) LogContext {
	return extractLogContext(ctx)
}

// Attrs returns the non-empty context fields as slog attributes.
func Attrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := []slog.Attr{}

	if lc.RunID != "" {
		attrs = append(attrs, logfields.RunID(lc.RunID))
	}
	if lc.Language != "" {
		attrs = append(attrs, logfields.LanguageVersion(lc.Language))
	}
	if lc.Framework != "" {
		attrs = append(attrs, logfields.FrameworkVersion(lc.Framework))
	}
	if lc.Stage != "" {
		attrs = append(attrs, logfields.Stage(lc.Stage))
	}
	return attrs
}

// Logger returns base enriched with the context fields. A nil base falls back
// to slog.Default().
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	attrs := Attrs(ctx)
	if len(attrs) == 0 {
		return base
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return base.With(args...)
}
