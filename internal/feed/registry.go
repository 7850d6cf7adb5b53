package feed

import (
	"context"
	"time"

	expirable "github.com/go-pkgz/expirable-cache/v2"
	"github.com/google/uuid"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/metrics"
)

// Registry keeps live sessions in memory. A session idle for longer than the
// TTL is dropped along with its state; nothing is persisted.
type Registry struct {
	sessions expirable.Cache[string, *Session]
	cmds     Commands
	limits   command.FeedLimits
	sweep    time.Duration
}

func NewRegistry(cmds Commands, limits command.FeedLimits, idleTTL time.Duration, maxSessions int) *Registry {
	return &Registry{
		sessions: expirable.NewCache[string, *Session]().
			WithTTL(idleTTL).
			WithMaxKeys(maxSessions).
			WithLRU(),
		cmds:   cmds,
		limits: limits,
		sweep:  idleTTL,
	}
}

// Create starts a new session for userID, which is empty for anonymous readers.
func (r *Registry) Create(userID string) *Session {
	s := NewSession(uuid.NewString(), userID, r.cmds, r.limits)
	r.sessions.Set(s.ID(), s, 0)
	metrics.FeedSessions.Set(float64(r.sessions.Len()))
	return s
}

// Get returns the session and resets its idle timer. A session belonging to
// another user is reported as missing.
func (r *Registry) Get(id, userID string) (*Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok || s.UserID() != userID {
		return nil, &domain.NotFoundError{Entity: "session", ID: id}
	}
	r.sessions.Set(id, s, 0)
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.sessions.Invalidate(id)
	metrics.FeedSessions.Set(float64(r.sessions.Len()))
}

// Run frees expired sessions every idle TTL until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.sessions.DeleteExpired()
			metrics.FeedSessions.Set(float64(r.sessions.Len()))
		}
	}
}
