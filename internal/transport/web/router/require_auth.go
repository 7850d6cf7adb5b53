package router

import (
	"net/http"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// requireAuthMiddleware guards per-user engagement routes. Anonymous callers
// get 401 before any controller runs, so nothing is recorded for them.
func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if domain.UserIDFromContext(ctx) == "" {
			logger := domain.LoggerFromContext(ctx)
			logger.InfoContext(ctx, "rejecting anonymous request to per-user endpoint")
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
