package datasources

import (
	"context"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// BookmarkInserter adds a (user, article) bookmark. inserted is false when the
// pair already existed; that is not an error.
type BookmarkInserter interface {
	InsertBookmark(ctx context.Context, userID, articleID string) (inserted bool, err error)
}

// BookmarkDeleter removes a bookmark. Removing a missing bookmark is a no-op.
type BookmarkDeleter interface {
	DeleteBookmark(ctx context.Context, userID, articleID string) error
}

type BookmarkedArticleIDsLister interface {
	ListBookmarkedArticleIDs(ctx context.Context, userID string) ([]string, error)
}

// BookmarkedArticlesLister lists a user's bookmarked articles, most recently bookmarked first.
type BookmarkedArticlesLister interface {
	ListBookmarkedArticles(ctx context.Context, userID string, limit int) ([]domain.Article, error)
}

type BookmarkStore interface {
	BookmarkInserter
	BookmarkDeleter
	BookmarkedArticleIDsLister
	BookmarkedArticlesLister
}

// ViewInserter records that a user has seen an article. inserted is true only
// for the call that created the record.
type ViewInserter interface {
	InsertView(ctx context.Context, userID, articleID string) (inserted bool, err error)
}

// ViewCountIncrementer must increment atomically at the store, never read-then-write.
type ViewCountIncrementer interface {
	IncrementViewCount(ctx context.Context, articleID string) error
}

type ViewStore interface {
	ViewInserter
	ViewCountIncrementer
}
