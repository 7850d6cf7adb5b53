package controller

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/feed"
)

type SessionRegistry interface {
	Create(userID string) *feed.Session
	Get(id, userID string) (*feed.Session, error)
}

type SessionResponse struct {
	Data feed.State `json:"data"`
}

// SessionCreate starts a session and performs its initial load. Load failures
// are reported in the returned state rather than as an HTTP error.
type SessionCreate struct {
	Registry SessionRegistry
}

func (c SessionCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := c.Registry.Create(domain.UserIDFromContext(ctx))
	logger := domain.LoggerFromContext(ctx).With("session_id", session.ID())
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := session.Start(ctx); err != nil {
		logger.WarnContext(ctx, "initial session load failed", "error", err)
	}

	writeJSON(ctx, w, http.StatusCreated, SessionResponse{Data: session.State()})
}

type SessionGet struct {
	Registry SessionRegistry
}

func (c SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := c.Registry.Get(mux.Vars(r)["session_id"], domain.UserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, "unable to find session", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, SessionResponse{Data: session.State()})
}

// SessionAction runs one feed operation against a session and returns the
// resulting state. Validation failures are reported as 400; other failures
// are already recorded in the state's error field and still return 200.
type SessionAction struct {
	Registry SessionRegistry
	Action   func(ctx context.Context, s *feed.Session, r *http.Request) error
}

func (c SessionAction) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := c.Registry.Get(mux.Vars(r)["session_id"], domain.UserIDFromContext(ctx))
	if err != nil {
		writeError(ctx, w, "unable to find session", err)
		return
	}
	logger := domain.LoggerFromContext(ctx).With("session_id", session.ID())
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := c.Action(ctx, session, r); err != nil {
		if status := statusForError(err); status != http.StatusInternalServerError {
			writeError(ctx, w, "invalid session action", err)
			return
		}
		logger.WarnContext(ctx, "session action failed", "error", err)
	}

	writeJSON(ctx, w, http.StatusOK, SessionResponse{Data: session.State()})
}

func LoadSectionAction(ctx context.Context, s *feed.Session, r *http.Request) error {
	vars := mux.Vars(r)
	if subcategory := r.URL.Query().Get("subcategory"); subcategory != "" {
		return s.LoadSubcategory(ctx, vars["category"], subcategory)
	}
	return s.LoadSection(ctx, vars["category"])
}

func SearchAction(ctx context.Context, s *feed.Session, r *http.Request) error {
	return s.Search(ctx, r.URL.Query().Get("q"))
}

func LoadTrendingAction(ctx context.Context, s *feed.Session, _ *http.Request) error {
	return s.LoadTrending(ctx)
}

func LoadChallengesAction(ctx context.Context, s *feed.Session, _ *http.Request) error {
	return s.LoadChallenges(ctx)
}

func ToggleBookmarkAction(ctx context.Context, s *feed.Session, r *http.Request) error {
	return s.ToggleBookmark(ctx, mux.Vars(r)["article_id"])
}
