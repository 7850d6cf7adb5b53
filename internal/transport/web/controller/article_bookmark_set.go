package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// ArticleBookmarkSet puts the caller's bookmark on an article into the
// Bookmarked state. PUT and DELETE are routed to instances with true and false.
type ArticleBookmarkSet struct {
	SetCmd     command.Command[command.SetBookmarkRequest, command.Empty]
	Bookmarked bool
}

func (c ArticleBookmarkSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	if _, err := c.SetCmd.Execute(ctx, command.SetBookmarkRequest{
		UserID:     domain.UserIDFromContext(ctx),
		ArticleID:  articleID,
		Bookmarked: c.Bookmarked,
	}); err != nil {
		writeError(ctx, w, "failed to set bookmark", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
