package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type RecordArticleViewRequest struct {
	UserID    string
	ArticleID string
}

type RecordArticleViewResponse struct {
	// Counted is true only for the first view of the article by this user.
	Counted bool
}

// RecordArticleView stores at most one view per user and article, and bumps
// the article's view count only when a new view row was created. Anonymous
// views are not recorded.
type RecordArticleView struct {
	Inserter    datasources.ViewInserter
	Incrementer datasources.ViewCountIncrementer
}

func NewRecordArticleView(
	inserter datasources.ViewInserter,
	incrementer datasources.ViewCountIncrementer,
) *RecordArticleView {
	return &RecordArticleView{
		Inserter:    inserter,
		Incrementer: incrementer,
	}
}

func (c *RecordArticleView) Execute(
	ctx context.Context, req RecordArticleViewRequest,
) (RecordArticleViewResponse, error) {
	if req.UserID == "" {
		return RecordArticleViewResponse{}, nil
	}
	if err := requireArticleID(req.ArticleID); err != nil {
		return RecordArticleViewResponse{}, err
	}

	inserted, err := c.Inserter.InsertView(ctx, req.UserID, req.ArticleID)
	if err != nil {
		return RecordArticleViewResponse{}, fmt.Errorf("inserting view: %w", asStoreError("insert view", err))
	}
	if !inserted {
		return RecordArticleViewResponse{}, nil
	}

	// The view row is already committed; a failed increment leaves it in place.
	if err := c.Incrementer.IncrementViewCount(ctx, req.ArticleID); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "view recorded but view count not incremented",
			"error", err, "articleID", req.ArticleID)
		return RecordArticleViewResponse{}, fmt.Errorf("incrementing view count: %w",
			asStoreError("increment view count", err))
	}

	return RecordArticleViewResponse{Counted: true}, nil
}
