package ctxutil

import "context"

type traceKey struct{}

// Trace carries request correlation ids down into services and repos, where
// gin's context is out of reach.
type Trace struct {
	TraceID   string
	RequestID string
}

func WithTrace(ctx context.Context, tr Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, tr)
}

func TraceFrom(ctx context.Context) Trace {
	if tr, ok := ctx.Value(traceKey{}).(Trace); ok {
		return tr
	}
	return Trace{}
}
