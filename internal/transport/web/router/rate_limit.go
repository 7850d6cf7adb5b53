package router

import (
	"net"
	"net/http"
	"strconv"
	"time"

	expirable "github.com/go-pkgz/expirable-cache/v2"
	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/metrics"
	"golang.org/x/time/rate"
)

const (
	sessionCreateRate  = rate.Limit(1)
	sessionCreateBurst = 10
	limiterIdleTTL     = 5 * time.Minute
	maxTrackedClients  = 10000
)

// clientRateLimiter hands out one token bucket per client. Buckets for
// clients that have gone quiet expire with the cache entry.
type clientRateLimiter struct {
	limiters expirable.Cache[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newClientRateLimiter(r rate.Limit, burst int) *clientRateLimiter {
	return &clientRateLimiter{
		limiters: expirable.NewCache[string, *rate.Limiter]().
			WithTTL(limiterIdleTTL).
			WithMaxKeys(maxTrackedClients).
			WithLRU(),
		rate:  r,
		burst: burst,
	}
}

func (l *clientRateLimiter) limiter(client string) *rate.Limiter {
	if lim, ok := l.limiters.Get(client); ok {
		l.limiters.Set(client, lim, 0)
		return lim
	}
	lim := rate.NewLimiter(l.rate, l.burst)
	l.limiters.Set(client, lim, 0)
	return lim
}

func (l *clientRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || l.limiter(clientKey(r)).Allow() {
			next.ServeHTTP(w, r)
			return
		}

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.RateLimited.WithLabelValues(route).Inc()

		logger := domain.LoggerFromContext(r.Context())
		logger.InfoContext(r.Context(), "rate limit exceeded", "client", clientKey(r))

		retryAfter := max(int(1.0/float64(l.rate)), 1)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		w.WriteHeader(http.StatusTooManyRequests)
	})
}

// clientKey identifies the caller: the authenticated user when there is one,
// otherwise the remote IP.
func clientKey(r *http.Request) string {
	if userID := domain.UserIDFromContext(r.Context()); userID != "" {
		return "user:" + userID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
