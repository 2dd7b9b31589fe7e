package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/domain/auth"
	"taskboard/internal/transport/http/api"
)

// RequireSession rejects requests without a valid bearer token. With
// enforce false (no dashboard password configured) it is a no-op, so
// local setups keep working without a login step.
func RequireSession(secret string, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enforce {
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "session token required", GetRequestID(r.Context()))
				return
			}
			if _, err := auth.ParseToken(secret, parts[1]); err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired session token", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
