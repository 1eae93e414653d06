package admin_auth

import (
	"net/http"
	"strings"

	"restaurant/pkg/logger"
)

// Middleware guards the admin routes with a bearer session token issued by
// the auth service on login.
func Middleware(log handlerLogger, sessions sessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if err := sessions.Validate(r.Context(), token); err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("rejected admin request with invalid session token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
