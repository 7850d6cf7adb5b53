package router

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// loggingMiddleware attaches a request-scoped logger carrying a request ID.
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := logger.With(
				"request_id", uuid.NewString(),
				"method", r.Method,
				"path", r.URL.Path,
			)
			next.ServeHTTP(w, r.WithContext(domain.ContextWithLogger(r.Context(), requestLogger)))
		})
	}
}
