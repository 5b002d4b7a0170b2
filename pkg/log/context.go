package log

import "context"

// WithRequestID attaches a request id that every log line emitted with ctx will carry.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// WithUserID attaches the caller's user id for log correlation.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func contextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	var fields []any
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		fields = append(fields, string(requestIDKey), v)
	}
	if v, ok := ctx.Value(userIDKey).(string); ok && v != "" {
		fields = append(fields, string(userIDKey), v)
	}
	return fields
}
