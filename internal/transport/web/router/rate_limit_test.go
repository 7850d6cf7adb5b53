package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClientKey(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		userID     string
		expected   string
	}{
		{name: "anonymous_ipv4", remoteAddr: "192.0.2.1:1234", expected: "ip:192.0.2.1"},
		{name: "anonymous_ipv6", remoteAddr: "[2001:db8::1]:443", expected: "ip:2001:db8::1"},
		{name: "no_port", remoteAddr: "192.0.2.7", expected: "ip:192.0.2.7"},
		{name: "authenticated", remoteAddr: "192.0.2.1:1234", userID: "u1", expected: "user:u1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.userID != "" {
				req = req.WithContext(domain.ContextWithUserID(context.Background(), tc.userID))
			}
			assert.Equal(t, tc.expected, clientKey(req))
		})
	}
}

func TestClientRateLimiter_SeparatesClients(t *testing.T) {
	limiter := newClientRateLimiter(sessionCreateRate, 1)
	h := limiter.middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(method, remoteAddr string) int {
		req := httptest.NewRequest(method, "/", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, serve(http.MethodPost, "192.0.2.1:1"))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodPost, "192.0.2.1:2"))
	assert.Equal(t, http.StatusNoContent, serve(http.MethodPost, "192.0.2.2:1"))
	assert.Equal(t, http.StatusNoContent, serve(http.MethodOptions, "192.0.2.1:3"))
}
