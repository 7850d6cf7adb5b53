package command

import (
	"context"
	"errors"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the result type for commands that only return an error.
type Empty struct{}

// FeedLimits holds the page size used by each kind of list when the caller
// does not ask for one.
type FeedLimits struct {
	Section     int
	Trending    int
	Search      int
	Category    int
	Subcategory int
	Challenges  int
	Bookmarks   int
}

// asStoreError makes sure a failure from a datasource reaches callers as a
// *domain.StoreError, without double-wrapping one the driver already produced.
func asStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return err
	}
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return err
	}
	return domain.NewStoreError(op, err)
}

func requireUser(userID string) error {
	if userID == "" {
		return &domain.ValidationError{Field: "user_id", Reason: "a signed-in user is required"}
	}
	return nil
}

func requireArticleID(articleID string) error {
	if articleID == "" {
		return &domain.ValidationError{Field: "article_id", Reason: "must not be empty"}
	}
	return nil
}
