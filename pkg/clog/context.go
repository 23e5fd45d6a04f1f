package clog

import (
	"context"
	"maps"
	"sync"
)

// logContext accumulates attributes over the life of a request so the final
// access log line carries everything handlers and middlewares recorded.
type logContext struct {
	mu         sync.RWMutex
	attributes map[string]any
}

type logContextKey struct{}

// ContextWithSlog installs an attribute accumulator. Without it the Add*
// functions are no-ops.
func ContextWithSlog(ctx context.Context) context.Context {
	return context.WithValue(ctx, logContextKey{}, &logContext{
		attributes: make(map[string]any),
	})
}

func fromContext(ctx context.Context) *logContext {
	lc, _ := ctx.Value(logContextKey{}).(*logContext)
	return lc
}

func AddAttribute(ctx context.Context, key string, value any) {
	lc := fromContext(ctx)
	if lc == nil {
		return
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	lc.attributes[key] = value
}

func AddAttributes(ctx context.Context, attributes map[string]any) {
	lc := fromContext(ctx)
	if lc == nil {
		return
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	mergeMaps(lc.attributes, attributes)
}

// GetAttribute returns the recorded value for key, or the zero value when
// the key is absent, the type does not match, or no accumulator is installed.
func GetAttribute[T any](ctx context.Context, key string) T {
	var zero T
	lc := fromContext(ctx)
	if lc == nil {
		return zero
	}
	lc.mu.RLock()
	v, ok := lc.attributes[key]
	lc.mu.RUnlock()
	if !ok {
		return zero
	}
	typed, ok := v.(T)
	if !ok {
		return zero
	}
	return typed
}

// mergeMaps overwrites dst keys with src values, recursing into values that
// are themselves maps so nested attribute groups merge instead of replacing.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		if dstMap, ok := dst[k].(map[string]any); ok {
			mergeMaps(dstMap, srcMap)
		} else {
			dst[k] = srcMap
		}
	}
}

const (
	ErrorAttributeKey = "error.message"
	StackAttributeKey = "error.stack"
)

func AddError(ctx context.Context, err error) {
	AddAttribute(ctx, ErrorAttributeKey, err)
}

func GetError(ctx context.Context) error {
	return GetAttribute[error](ctx, ErrorAttributeKey)
}

func AddStack(ctx context.Context, stack string) {
	AddAttribute(ctx, StackAttributeKey, stack)
}

func GetStack(ctx context.Context) string {
	return GetAttribute[string](ctx, StackAttributeKey)
}

// GetAttributes returns a copy of everything recorded so far.
func GetAttributes(ctx context.Context) map[string]any {
	lc := fromContext(ctx)
	if lc == nil {
		return nil
	}
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	copied := make(map[string]any, len(lc.attributes))
	maps.Copy(copied, lc.attributes)
	return copied
}
