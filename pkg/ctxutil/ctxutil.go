package ctxutil

import (
	"context"
	"time"

	"github.com/heartmarshall/twitter-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	tokenKey     ctxKey = "token"
	requestIDKey ctxKey = "request_id"
)

// Token identifies the access token a request was authenticated with.
type Token struct {
	ID        string
	ExpiresAt time.Time
}

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the actor from the context.
// Returns domain.AnonymousActor and false if the value is missing.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok {
		return domain.AnonymousActor, false
	}
	return a, true
}

// UserIDFromCtx extracts the authenticated user ID from the context.
// Returns 0 and false for anonymous requests.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	a, ok := ActorFromCtx(ctx)
	if !ok || a.UserID == 0 {
		return 0, false
	}
	return a.UserID, true
}

// WithToken stores the access token identity in the context.
func WithToken(ctx context.Context, t Token) context.Context {
	return context.WithValue(ctx, tokenKey, t)
}

// TokenFromCtx extracts the access token identity from the context.
func TokenFromCtx(ctx context.Context) (Token, bool) {
	t, ok := ctx.Value(tokenKey).(Token)
	if !ok || t.ID == "" {
		return Token{}, false
	}
	return t, true
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
