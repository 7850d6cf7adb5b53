package cache

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/datasources/memory"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	*memory.Store
	articleCalls   int
	challengeCalls int
	failNext       bool
}

func (s *countingStore) ListArticles(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	s.articleCalls++
	if s.failNext {
		s.failNext = false
		return nil, domain.NewStoreError("list articles", errors.New("timeout"))
	}
	return s.Store.ListArticles(ctx, f)
}

func (s *countingStore) ListChallenges(ctx context.Context, limit int) ([]domain.CodingChallenge, error) {
	s.challengeCalls++
	return s.Store.ListChallenges(ctx, limit)
}

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenBackend) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func newCountingStore(t *testing.T) *countingStore {
	t.Helper()
	s := memory.New()
	require.NoError(t, s.PutArticle(domain.Article{
		ID: "a1", Title: "Cached", Category: domain.CategoryAI, Tags: []string{"go"},
		PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, s.PutChallenge(domain.CodingChallenge{
		ID: "c1", Difficulty: domain.DifficultyEasy, Languages: []string{"go"},
	}))
	return &countingStore{Store: s}
}

func TestLister_ServesRepeatedQueriesFromCache(t *testing.T) {
	ctx := testContext()
	store := newCountingStore(t)
	sut := NewLister(store, NewMemory(time.Minute, 100))

	filter := domain.ArticleFilter{Category: domain.CategoryAI, Limit: 6}
	first, err := sut.ListArticles(ctx, filter)
	require.NoError(t, err)
	second, err := sut.ListArticles(ctx, filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.articleCalls)

	_, err = sut.ListArticles(ctx, domain.ArticleFilter{Category: domain.CategoryAI, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, store.articleCalls, "different limit is a different key")

	_, err = sut.ListChallenges(ctx, 5)
	require.NoError(t, err)
	_, err = sut.ListChallenges(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, store.challengeCalls)
}

func TestLister_DoesNotCacheErrors(t *testing.T) {
	ctx := testContext()
	store := newCountingStore(t)
	store.failNext = true
	sut := NewLister(store, NewMemory(time.Minute, 100))

	filter := domain.ArticleFilter{Limit: 6}
	_, err := sut.ListArticles(ctx, filter)
	var storeErr *domain.StoreError
	require.True(t, errors.As(err, &storeErr))

	articles, err := sut.ListArticles(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
	assert.Equal(t, 2, store.articleCalls)
}

func TestLister_BrokenBackendFallsThrough(t *testing.T) {
	ctx := testContext()
	store := newCountingStore(t)
	sut := NewLister(store, brokenBackend{})

	articles, err := sut.ListArticles(ctx, domain.ArticleFilter{Limit: 6})
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestLister_PassesWritesThrough(t *testing.T) {
	ctx := testContext()
	store := newCountingStore(t)
	sut := NewLister(store, NewMemory(time.Minute, 100))

	inserted, err := sut.InsertBookmark(ctx, "u1", "a1")
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 1, store.BookmarkCount("u1", "a1"))
}

func TestArticlesKey_NormalizesQuery(t *testing.T) {
	assert.Equal(t,
		articlesKey(domain.ArticleFilter{Query: "  ai ", Limit: 20}),
		articlesKey(domain.ArticleFilter{Query: "ai", Limit: 20}))
	assert.NotEqual(t,
		articlesKey(domain.ArticleFilter{TrendingOnly: true, Limit: 10}),
		articlesKey(domain.ArticleFilter{Limit: 10}))
}
