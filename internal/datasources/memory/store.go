// Package memory is an in-process store driver with the same uniqueness and
// ordering guarantees as the MySQL driver. It backs local runs without a
// database and the engine's tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/samber/lo"
)

var _ datasources.FeedRepository = (*Store)(nil)

type pair struct {
	userID    string
	articleID string
}

type bookmark struct {
	pair
	seq          int64
	bookmarkedAt time.Time
}

type Store struct {
	mu         sync.Mutex
	articles   map[string]domain.Article
	challenges map[string]domain.CodingChallenge
	bookmarks  map[pair]bookmark
	views      map[pair]time.Time
	seq        int64
	now        func() time.Time
}

func New() *Store {
	return &Store{
		articles:   map[string]domain.Article{},
		challenges: map[string]domain.CodingChallenge{},
		bookmarks:  map[pair]bookmark{},
		views:      map[pair]time.Time{},
		now:        time.Now,
	}
}

// PutArticle inserts or replaces an article. Articles outside the closed
// category set are rejected.
func (s *Store) PutArticle(a domain.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a.Tags = slices.Clone(a.Tags)
	s.articles[a.ID] = a
	return nil
}

func (s *Store) PutChallenge(c domain.CodingChallenge) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Languages = slices.Clone(c.Languages)
	s.challenges[c.ID] = c
	return nil
}

func (s *Store) ListArticles(_ context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	matched := lo.Filter(lo.Values(s.articles), func(a domain.Article, _ int) bool {
		return domain.MatchesFilter(a, filter)
	})
	s.mu.Unlock()

	return domain.Rank(matched, filter.Policy(), filter.Limit), nil
}

func (s *Store) GetArticle(_ context.Context, id string) (domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, &domain.NotFoundError{Entity: "article", ID: id}
	}
	return a, nil
}

func (s *Store) ListChallenges(_ context.Context, limit int) ([]domain.CodingChallenge, error) {
	s.mu.Lock()
	challenges := lo.Values(s.challenges)
	s.mu.Unlock()

	slices.SortFunc(challenges, func(a, b domain.CodingChallenge) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if limit > 0 && len(challenges) > limit {
		challenges = challenges[:limit]
	}
	return challenges, nil
}

func (s *Store) GetChallenge(_ context.Context, id string) (domain.CodingChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[id]
	if !ok {
		return domain.CodingChallenge{}, &domain.NotFoundError{Entity: "challenge", ID: id}
	}
	return c, nil
}

func (s *Store) InsertBookmark(_ context.Context, userID, articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pair{userID: userID, articleID: articleID}
	if _, exists := s.bookmarks[key]; exists {
		return false, nil
	}
	s.seq++
	s.bookmarks[key] = bookmark{pair: key, seq: s.seq, bookmarkedAt: s.now()}
	return true, nil
}

func (s *Store) DeleteBookmark(_ context.Context, userID, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookmarks, pair{userID: userID, articleID: articleID})
	return nil
}

func (s *Store) ListBookmarkedArticleIDs(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Map(s.userBookmarks(userID), func(b bookmark, _ int) string { return b.articleID }), nil
}

func (s *Store) ListBookmarkedArticles(_ context.Context, userID string, limit int) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var articles []domain.Article
	for _, b := range s.userBookmarks(userID) {
		if limit > 0 && len(articles) >= limit {
			break
		}
		if a, ok := s.articles[b.articleID]; ok {
			articles = append(articles, a)
		}
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}

// userBookmarks returns the user's bookmarks newest first. Callers hold mu.
func (s *Store) userBookmarks(userID string) []bookmark {
	marks := lo.Filter(lo.Values(s.bookmarks), func(b bookmark, _ int) bool {
		return b.userID == userID
	})
	slices.SortFunc(marks, func(a, b bookmark) int {
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		}
		return 0
	})
	return marks
}

// BookmarkCount returns how many bookmark rows exist for the pair.
func (s *Store) BookmarkCount(userID, articleID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookmarks[pair{userID: userID, articleID: articleID}]; ok {
		return 1
	}
	return 0
}

func (s *Store) InsertView(_ context.Context, userID, articleID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pair{userID: userID, articleID: articleID}
	if _, exists := s.views[key]; exists {
		return false, nil
	}
	s.views[key] = s.now()
	return true, nil
}

// HasView reports whether a view record exists for the pair.
func (s *Store) HasView(userID, articleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.views[pair{userID: userID, articleID: articleID}]
	return ok
}

func (s *Store) IncrementViewCount(_ context.Context, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[articleID]
	if !ok {
		// Matches UPDATE ... WHERE id = ? affecting no rows.
		return nil
	}
	a.ViewCount++
	s.articles[articleID] = a
	return nil
}
