package controller

import (
	"net/http"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type ArticlesSearch struct {
	SearchCmd command.Command[command.SearchArticlesRequest, []domain.Article]
}

func (c ArticlesSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse search limit", err)
		return
	}

	query, _ := domain.NormalizeQuery(r.URL.Query().Get("q"))
	articles, err := c.SearchCmd.Execute(ctx, command.SearchArticlesRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		writeError(ctx, w, "unable to search articles", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ArticlesListResponse{
		Data: domain.ClassifyAll(articles),
		Metadata: ArticlesListMetadata{
			Count: len(articles),
			Query: query,
		},
	})
}
