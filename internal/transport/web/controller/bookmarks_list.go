package controller

import (
	"net/http"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type BookmarksList struct {
	ListCmd command.Command[command.ListBookmarkedArticlesRequest, []domain.Article]
}

func (c BookmarksList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse bookmark list limit", err)
		return
	}

	articles, err := c.ListCmd.Execute(ctx, command.ListBookmarkedArticlesRequest{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		writeError(ctx, w, "unable to list bookmarked articles", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ArticlesListResponse{
		Data:     domain.ClassifyAll(articles),
		Metadata: ArticlesListMetadata{Count: len(articles)},
	})
}
