package ctxutil

import "context"

type ctxKey string

const (
	profileIDKey ctxKey = "profile_id"
	requestIDKey ctxKey = "request_id"
)

// WithProfileID stores the authenticated profile ID in the context.
func WithProfileID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, profileIDKey, id)
}

// ProfileIDFromCtx extracts the profile ID from the context.
// Returns "" and false if the value is missing, empty, or of the wrong type.
func ProfileIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(profileIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
