package ctxmeta

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID кладёт идентификатор запроса в контекст.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// RequestID достаёт идентификатор запроса из контекста.
func RequestID(ctx context.Context) (string, bool) {
	rid, ok := ctx.Value(requestIDKey).(string)
	return rid, ok && rid != ""
}
