package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/twitter-backend/pkg/ctxutil"
)

// RequestIDHeader is the header used to propagate request ids.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLength = 128

// RequestID returns middleware that reuses the caller's request id, or
// assigns a fresh UUID when it is missing or oversized.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			ctx := ctxutil.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
