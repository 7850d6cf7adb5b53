package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type SetBookmarkRequest struct {
	UserID     string
	ArticleID  string
	Bookmarked bool
}

// SetBookmark moves a bookmark to the requested state. Both directions are
// idempotent: inserting an existing bookmark and deleting a missing one succeed.
type SetBookmark struct {
	Inserter datasources.BookmarkInserter
	Deleter  datasources.BookmarkDeleter
}

func NewSetBookmark(inserter datasources.BookmarkInserter, deleter datasources.BookmarkDeleter) *SetBookmark {
	return &SetBookmark{
		Inserter: inserter,
		Deleter:  deleter,
	}
}

func (c *SetBookmark) Execute(ctx context.Context, req SetBookmarkRequest) (Empty, error) {
	if err := requireUser(req.UserID); err != nil {
		return Empty{}, err
	}
	if err := requireArticleID(req.ArticleID); err != nil {
		return Empty{}, err
	}

	logger := domain.LoggerFromContext(ctx)

	if !req.Bookmarked {
		if err := c.Deleter.DeleteBookmark(ctx, req.UserID, req.ArticleID); err != nil {
			return Empty{}, fmt.Errorf("deleting bookmark: %w", asStoreError("delete bookmark", err))
		}
		logger.DebugContext(ctx, "removed bookmark", "articleID", req.ArticleID)
		return Empty{}, nil
	}

	inserted, err := c.Inserter.InsertBookmark(ctx, req.UserID, req.ArticleID)
	if err != nil {
		return Empty{}, fmt.Errorf("inserting bookmark: %w", asStoreError("insert bookmark", err))
	}
	logger.DebugContext(ctx, "set bookmark", "articleID", req.ArticleID, "inserted", inserted)

	return Empty{}, nil
}
