package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type GetArticleRequest struct {
	// UserID is empty for anonymous readers.
	UserID    string
	ArticleID string
}

// GetArticle fetches a single article and records a view for signed-in readers.
type GetArticle struct {
	Getter       datasources.ArticleGetter
	ViewRecorder Command[RecordArticleViewRequest, RecordArticleViewResponse]
}

func NewGetArticle(
	getter datasources.ArticleGetter,
	viewRecorder Command[RecordArticleViewRequest, RecordArticleViewResponse],
) *GetArticle {
	return &GetArticle{
		Getter:       getter,
		ViewRecorder: viewRecorder,
	}
}

func (c *GetArticle) Execute(ctx context.Context, req GetArticleRequest) (domain.Article, error) {
	if err := requireArticleID(req.ArticleID); err != nil {
		return domain.Article{}, err
	}

	article, err := c.Getter.GetArticle(ctx, req.ArticleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article: %w", asStoreError("get article", err))
	}

	// View tracking is best-effort from the reader's point of view.
	res, err := c.ViewRecorder.Execute(ctx, RecordArticleViewRequest{
		UserID:    req.UserID,
		ArticleID: req.ArticleID,
	})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to record article view",
			"error", err, "articleID", req.ArticleID)
	}
	if res.Counted {
		article.ViewCount++
	}

	return article, nil
}
