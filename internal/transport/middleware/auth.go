package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, ctxutil.Token, error)
}

// Auth resolves the bearer token into the request actor. Requests without
// a token continue as anonymous; a rejected token ends the request with 401.
func Auth(authn authenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractBearerToken(r)
			if raw == "" {
				ctx := ctxutil.WithActor(r.Context(), domain.AnonymousActor)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			actor, token, err := authn.Authenticate(r.Context(), raw)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "Invalid or expired token.")
					return
				}
				logger.ErrorContext(r.Context(), "authentication failed",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeError(w, http.StatusServiceUnavailable, "Request failed.")
				return
			}

			ctx := ctxutil.WithActor(r.Context(), actor)
			ctx = ctxutil.WithToken(ctx, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
