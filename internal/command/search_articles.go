package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type SearchArticlesRequest struct {
	Query string
	Limit int
}

// SearchArticles matches the query against title, summary and tags across
// every category. A blank query is not a search: it returns the default
// recency load instead.
type SearchArticles struct {
	Lister       datasources.ArticleLister
	DefaultLimit int
}

func NewSearchArticles(lister datasources.ArticleLister, defaultLimit int) *SearchArticles {
	return &SearchArticles{
		Lister:       lister,
		DefaultLimit: defaultLimit,
	}
}

func (c *SearchArticles) Execute(ctx context.Context, req SearchArticlesRequest) ([]domain.Article, error) {
	filter := domain.ArticleFilter{
		Category: domain.CategoryAll,
		Limit:    req.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = c.DefaultLimit
	}
	if q, ok := domain.NormalizeQuery(req.Query); ok {
		filter.Query = q
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	articles, err := c.Lister.ListArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", asStoreError("search articles", err))
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}
