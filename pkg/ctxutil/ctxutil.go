// Package ctxutil carries request-scoped identity and tracing values through
// context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	identityKey  ctxKey = "identity"
	requestIDKey ctxKey = "request_id"
)

// WithIdentity stores the authenticated user's ID in the context.
func WithIdentity(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, identityKey, userID)
}

// IdentityFromCtx extracts the authenticated user's ID from the context.
// Returns uuid.Nil and false for anonymous requests (missing value, nil UUID
// or wrong type).
func IdentityFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
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
