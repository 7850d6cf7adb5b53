// Package feed holds per-session feed state and the operations that mutate it.
package feed

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Commands are the engine operations a session drives.
type Commands struct {
	ListArticles   command.Command[command.ListArticlesRequest, []domain.Article]
	SearchArticles command.Command[command.SearchArticlesRequest, []domain.Article]
	ListChallenges command.Command[command.ListChallengesRequest, []domain.CodingChallenge]
	LoadBookmarks  command.Command[string, domain.BookmarkSet]
	ToggleBookmark command.Command[command.ToggleBookmarkRequest, command.ToggleBookmarkResponse]
}

// Challenge is a coding challenge with its display tier.
type Challenge struct {
	domain.CodingChallenge
	Classification domain.ChallengeClassification `json:"classification"`
}

// State is a read-only snapshot of a session's feed.
type State struct {
	ID               string                     `json:"id"`
	SelectedCategory domain.Category            `json:"selected_category"`
	Query            string                     `json:"query,omitempty"`
	Articles         []domain.ClassifiedArticle `json:"articles"`
	Challenges       []Challenge                `json:"challenges"`
	Bookmarks        domain.BookmarkSet         `json:"bookmarked_article_ids"`
	Loading          bool                       `json:"loading"`
	Error            string                     `json:"error,omitempty"`
}

// Session owns the feed state of one reader. Article loads (section,
// trending and search) share a request key sequence: only the most recently
// started one may write its result or error.
type Session struct {
	id     string
	userID string
	cmds   Commands
	limits command.FeedLimits

	mu         sync.Mutex
	state      State
	requestKey uint64
}

func NewSession(id, userID string, cmds Commands, limits command.FeedLimits) *Session {
	return &Session{
		id:     id,
		userID: userID,
		cmds:   cmds,
		limits: limits,
		state: State{
			ID:               id,
			SelectedCategory: domain.CategoryAll,
			Articles:         []domain.ClassifiedArticle{},
			Challenges:       []Challenge{},
			Bookmarks:        domain.NewBookmarkSet(),
			Loading:          true,
		},
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) UserID() string {
	return s.userID
}

// State returns a copy that later operations do not touch.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Articles = slices.Clone(s.state.Articles)
	st.Challenges = slices.Clone(s.state.Challenges)
	st.Bookmarks = s.state.Bookmarks.Clone()
	return st
}

// Start performs the initial load: the unfiltered article list, challenges
// and, for signed-in readers, bookmarks, concurrently. The loads are
// independent; one failing never cancels the others, and every failure is
// returned.
func (s *Session) Start(ctx context.Context) error {
	loads := []func(context.Context) error{
		func(ctx context.Context) error {
			return s.LoadSection(ctx, string(domain.CategoryAll))
		},
		s.LoadChallenges,
		s.LoadBookmarks,
	}

	errs := make([]error, len(loads))
	var g errgroup.Group
	for i, load := range loads {
		g.Go(func() error {
			errs[i] = load(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// LoadSection replaces the articles with the newest of a category, or of all
// categories for "all" or "". An unknown category is recorded as the
// session error.
func (s *Session) LoadSection(ctx context.Context, category string) error {
	selected, parseErr := domain.ParseCategoryFilter(category)
	return s.loadArticles(ctx, "Failed to load articles", func(ctx context.Context) ([]domain.Article, error) {
		if parseErr != nil {
			return nil, parseErr
		}
		return s.cmds.ListArticles.Execute(ctx, command.ListArticlesRequest{
			Filter: domain.ArticleFilter{Category: selected, Limit: s.limits.Category},
		})
	}, func(st *State) {
		st.SelectedCategory = selected
		st.Query = ""
	})
}

// LoadSubcategory narrows a category to one subcategory.
func (s *Session) LoadSubcategory(ctx context.Context, category, subcategory string) error {
	selected, parseErr := domain.ParseCategory(category)
	sub, subErr := domain.ParseSubcategory(subcategory)
	return s.loadArticles(ctx, "Failed to load articles", func(ctx context.Context) ([]domain.Article, error) {
		if parseErr != nil {
			return nil, parseErr
		}
		if subErr != nil {
			return nil, subErr
		}
		return s.cmds.ListArticles.Execute(ctx, command.ListArticlesRequest{
			Filter: domain.ArticleFilter{Category: selected, Subcategory: sub, Limit: s.limits.Subcategory},
		})
	}, func(st *State) {
		st.SelectedCategory = selected
		st.Query = ""
	})
}

// LoadTrending replaces the articles with the trending rail.
func (s *Session) LoadTrending(ctx context.Context) error {
	return s.loadArticles(ctx, "Failed to load trending articles", func(ctx context.Context) ([]domain.Article, error) {
		return s.cmds.ListArticles.Execute(ctx, command.ListArticlesRequest{
			Filter: domain.ArticleFilter{TrendingOnly: true, Limit: s.limits.Trending},
		})
	}, func(st *State) {
		st.Query = ""
	})
}

// Search replaces the articles with the query's matches. A blank query loads
// the default "all" section instead.
func (s *Session) Search(ctx context.Context, query string) error {
	q, ok := domain.NormalizeQuery(query)
	if !ok {
		return s.LoadSection(ctx, string(domain.CategoryAll))
	}
	return s.loadArticles(ctx, "Failed to search articles", func(ctx context.Context) ([]domain.Article, error) {
		return s.cmds.SearchArticles.Execute(ctx, command.SearchArticlesRequest{
			Query: q,
			Limit: s.limits.Search,
		})
	}, func(st *State) {
		st.Query = q
	})
}

func (s *Session) loadArticles(
	ctx context.Context,
	failure string,
	fetch func(context.Context) ([]domain.Article, error),
	apply func(*State),
) error {
	s.mu.Lock()
	s.requestKey++
	key := s.requestKey
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()

	articles, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != s.requestKey {
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "discarding superseded article load",
			"sessionID", s.id, "requestKey", key, "currentKey", s.requestKey)
		return nil
	}

	s.state.Loading = false
	if err != nil {
		s.state.Error = failure + ": " + err.Error()
		return err
	}
	s.state.Articles = domain.ClassifyAll(articles)
	apply(&s.state)
	return nil
}

// LoadChallenges runs beside article loads and never touches the loading flag.
func (s *Session) LoadChallenges(ctx context.Context) error {
	challenges, err := s.cmds.ListChallenges.Execute(ctx, command.ListChallengesRequest{
		Limit: s.limits.Challenges,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Error = "Failed to load challenges: " + err.Error()
		return err
	}
	s.state.Challenges = make([]Challenge, 0, len(challenges))
	for _, c := range challenges {
		s.state.Challenges = append(s.state.Challenges, Challenge{
			CodingChallenge: c,
			Classification:  domain.ClassifyChallenge(c),
		})
	}
	return nil
}

// LoadBookmarks refreshes the bookmark set. Failures are logged but leave
// the session error alone, since bookmarks are secondary to the feed.
func (s *Session) LoadBookmarks(ctx context.Context) error {
	if s.userID == "" {
		return nil
	}

	bookmarks, err := s.cmds.LoadBookmarks.Execute(ctx, s.userID)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to load bookmarks", "error", err, "sessionID", s.id)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Bookmarks = bookmarks
	return nil
}

// ToggleBookmark flips the bookmark for an article based on the session's
// current bookmark set. Anonymous sessions cannot bookmark and get a no-op.
func (s *Session) ToggleBookmark(ctx context.Context, articleID string) error {
	if s.userID == "" {
		return nil
	}

	s.mu.Lock()
	currently := s.state.Bookmarks.Contains(articleID)
	s.mu.Unlock()

	res, err := s.cmds.ToggleBookmark.Execute(ctx, command.ToggleBookmarkRequest{
		UserID:    s.userID,
		ArticleID: articleID,
		Currently: currently,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Error = "Failed to update bookmark: " + err.Error()
		return err
	}
	if res.Bookmarked {
		s.state.Bookmarks.Insert(articleID)
	} else {
		s.state.Bookmarks.Remove(articleID)
	}
	return nil
}
