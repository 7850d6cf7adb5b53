package command

import (
	"context"
)

type ToggleBookmarkRequest struct {
	UserID    string
	ArticleID string
	// Currently is the caller's view of whether the article is bookmarked.
	Currently bool
}

type ToggleBookmarkResponse struct {
	Bookmarked bool
}

// ToggleBookmark flips the bookmark relative to the caller's current view.
// Two callers racing from the same stale view both ask for the same target
// state, so the store ends up consistent with at most one row.
type ToggleBookmark struct {
	Setter Command[SetBookmarkRequest, Empty]
}

func NewToggleBookmark(setter Command[SetBookmarkRequest, Empty]) *ToggleBookmark {
	return &ToggleBookmark{Setter: setter}
}

func (c *ToggleBookmark) Execute(ctx context.Context, req ToggleBookmarkRequest) (ToggleBookmarkResponse, error) {
	target := !req.Currently
	if _, err := c.Setter.Execute(ctx, SetBookmarkRequest{
		UserID:     req.UserID,
		ArticleID:  req.ArticleID,
		Bookmarked: target,
	}); err != nil {
		return ToggleBookmarkResponse{Bookmarked: req.Currently}, err
	}
	return ToggleBookmarkResponse{Bookmarked: target}, nil
}
