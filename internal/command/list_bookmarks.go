package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type ListBookmarkedArticlesRequest struct {
	UserID string
	Limit  int
}

// ListBookmarkedArticles returns the user's bookmarked articles, most recently bookmarked first.
type ListBookmarkedArticles struct {
	Lister       datasources.BookmarkedArticlesLister
	DefaultLimit int
}

func NewListBookmarkedArticles(lister datasources.BookmarkedArticlesLister, defaultLimit int) *ListBookmarkedArticles {
	return &ListBookmarkedArticles{
		Lister:       lister,
		DefaultLimit: defaultLimit,
	}
}

func (c *ListBookmarkedArticles) Execute(
	ctx context.Context, req ListBookmarkedArticlesRequest,
) ([]domain.Article, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = c.DefaultLimit
	}

	articles, err := c.Lister.ListBookmarkedArticles(ctx, req.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarked articles: %w", asStoreError("list bookmarked articles", err))
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}

// LoadBookmarkSet returns the ids a user has bookmarked. Anonymous users get an empty set.
type LoadBookmarkSet struct {
	Lister datasources.BookmarkedArticleIDsLister
}

func NewLoadBookmarkSet(lister datasources.BookmarkedArticleIDsLister) *LoadBookmarkSet {
	return &LoadBookmarkSet{Lister: lister}
}

func (c *LoadBookmarkSet) Execute(ctx context.Context, userID string) (domain.BookmarkSet, error) {
	if userID == "" {
		return domain.NewBookmarkSet(), nil
	}
	ids, err := c.Lister.ListBookmarkedArticleIDs(ctx, userID)
	if err != nil {
		return domain.BookmarkSet{}, fmt.Errorf("listing bookmarks: %w", asStoreError("list bookmarks", err))
	}
	return domain.NewBookmarkSet(ids...), nil
}
