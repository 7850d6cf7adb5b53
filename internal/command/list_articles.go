package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type ListArticlesRequest struct {
	Filter domain.ArticleFilter
}

// ListArticles runs a filtered article query. A zero Limit takes the default page size.
type ListArticles struct {
	Lister       datasources.ArticleLister
	DefaultLimit int
}

func NewListArticles(lister datasources.ArticleLister, defaultLimit int) *ListArticles {
	return &ListArticles{
		Lister:       lister,
		DefaultLimit: defaultLimit,
	}
}

func (c *ListArticles) Execute(ctx context.Context, req ListArticlesRequest) ([]domain.Article, error) {
	filter := req.Filter
	if filter.Limit == 0 {
		filter.Limit = c.DefaultLimit
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	articles, err := c.Lister.ListArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", asStoreError("list articles", err))
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}
