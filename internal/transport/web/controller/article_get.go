package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type ArticleGet struct {
	GetCmd      command.Command[command.GetArticleRequest, domain.Article]
	CacheMaxAge time.Duration
}

type ArticleGetResponse struct {
	Data domain.ClassifiedArticle `json:"data"`
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	article, err := c.GetCmd.Execute(ctx, command.GetArticleRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
	})
	if err != nil {
		writeError(ctx, w, "unable to fetch article", err)
		return
	}

	setCacheMaxAge(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ArticleGetResponse{
		Data: domain.ClassifiedArticle{Article: article, Classification: domain.Classify(article)},
	})
}
