// Package cache decorates article and challenge listers with a short-lived
// cache of list results. Cached lists may show view counts up to one TTL old.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/metrics"
)

// Backend stores encoded list results.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Lister caches ListArticles and ListChallenges and passes everything else
// of the wrapped repository through untouched.
type Lister struct {
	datasources.FeedRepository
	Backend Backend
}

var _ datasources.FeedRepository = (*Lister)(nil)

func NewLister(repo datasources.FeedRepository, backend Backend) *Lister {
	return &Lister{FeedRepository: repo, Backend: backend}
}

func (l *Lister) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return cached(ctx, l.Backend, articlesKey(filter), func() ([]domain.Article, error) {
		return l.FeedRepository.ListArticles(ctx, filter)
	})
}

func (l *Lister) ListChallenges(ctx context.Context, limit int) ([]domain.CodingChallenge, error) {
	return cached(ctx, l.Backend, fmt.Sprintf("challenges:%d", limit), func() ([]domain.CodingChallenge, error) {
		return l.FeedRepository.ListChallenges(ctx, limit)
	})
}

func articlesKey(f domain.ArticleFilter) string {
	q, _ := domain.NormalizeQuery(f.Query)
	return fmt.Sprintf("articles:c=%s:s=%s:t=%t:tag=%s:q=%s:l=%d",
		f.Category, f.Subcategory, f.TrendingOnly, f.Tag, q, f.Limit)
}

// cached serves from the backend when possible. Backend failures are logged and
// fall through to the store; store failures are never cached.
func cached[T any](ctx context.Context, backend Backend, key string, load func() ([]T, error)) ([]T, error) {
	logger := domain.LoggerFromContext(ctx)

	if data, ok, err := backend.Get(ctx, key); err != nil {
		metrics.RecordCacheLookup("error")
		logger.WarnContext(ctx, "list cache read failed", "key", key, "error", err)
	} else if ok {
		var items []T
		err := json.Unmarshal(data, &items)
		if err == nil {
			metrics.RecordCacheLookup("hit")
			return items, nil
		}
		metrics.RecordCacheLookup("error")
		logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key, "error", err)
	} else {
		metrics.RecordCacheLookup("miss")
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		logger.WarnContext(ctx, "unable to encode list for cache", "key", key, "error", err)
		return items, nil
	}
	if err := backend.Set(ctx, key, data); err != nil {
		logger.WarnContext(ctx, "list cache write failed", "key", key, "error", err)
	}
	return items, nil
}
