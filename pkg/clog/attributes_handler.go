package clog

import (
	"context"
	"log/slog"
	"sort"
)

// AttributesHandler appends the request-scoped attributes collected via
// AddAttribute to every record before delegating to the wrapped handler.
type AttributesHandler struct {
	inner slog.Handler
}

func NewAttributesHandler(inner slog.Handler) *AttributesHandler {
	return &AttributesHandler{inner: inner}
}

func (h *AttributesHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *AttributesHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := GetAttributes(ctx); len(attrs) > 0 {
		// Sorted so repeated runs produce identical log lines.
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			record.AddAttrs(slog.Any(k, attrs[k]))
		}
	}
	return h.inner.Handle(ctx, record)
}

func (h *AttributesHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &AttributesHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *AttributesHandler) WithGroup(name string) slog.Handler {
	return &AttributesHandler{inner: h.inner.WithGroup(name)}
}
