package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Section is one grid of the sectioned feed.
type Section struct {
	Category domain.Category
	Articles []domain.Article
}

// ListSections loads the head of every feed section at once. The trending
// section holds flagged articles ordered by views; the others hold their
// category's newest articles.
type ListSections struct {
	Lister datasources.ArticleLister
	Limit  int
}

func NewListSections(lister datasources.ArticleLister, limit int) *ListSections {
	return &ListSections{
		Lister: lister,
		Limit:  limit,
	}
}

func (c *ListSections) Execute(ctx context.Context, _ Empty) ([]Section, error) {
	sections := make([]Section, len(domain.Categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range domain.Categories {
		filter := domain.ArticleFilter{Category: category, Limit: c.Limit}
		if category == domain.CategoryTrending {
			filter = domain.ArticleFilter{TrendingOnly: true, Limit: c.Limit}
		}
		g.Go(func() error {
			articles, err := c.Lister.ListArticles(gctx, filter)
			if err != nil {
				return fmt.Errorf("listing section [%s]: %w", category, asStoreError("list articles", err))
			}
			if articles == nil {
				articles = []domain.Article{}
			}
			sections[i] = Section{Category: category, Articles: articles}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sections, nil
}
