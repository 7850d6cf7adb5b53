package controller

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// ArticlesList serves filtered article lists. With TrendingOnly set it serves
// the trending rail regardless of the query string's trending flag.
type ArticlesList struct {
	ListCmd      command.Command[command.ListArticlesRequest, []domain.Article]
	TrendingOnly bool
	DefaultLimit int
	CacheMaxAge  time.Duration
}

type ArticlesListResponse struct {
	Data     []domain.ClassifiedArticle `json:"data"`
	Metadata ArticlesListMetadata       `json:"metadata"`
}

type ArticlesListMetadata struct {
	Count    int             `json:"count"`
	Category domain.Category `json:"category,omitempty"`
	Query    string          `json:"query,omitempty"`
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := articleFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse article filter in query string", err)
		return
	}
	if c.TrendingOnly {
		filter.TrendingOnly = true
	}
	if filter.Limit == 0 {
		filter.Limit = c.DefaultLimit
	}

	articles, err := c.ListCmd.Execute(ctx, command.ListArticlesRequest{Filter: filter})
	if err != nil {
		writeError(ctx, w, "unable to list articles", err)
		return
	}

	setCacheMaxAge(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ArticlesListResponse{
		Data: domain.ClassifyAll(articles),
		Metadata: ArticlesListMetadata{
			Count:    len(articles),
			Category: filter.Category,
		},
	})
}

func articleFilterFromQuery(q url.Values) (domain.ArticleFilter, error) {
	var filter domain.ArticleFilter

	category, err := domain.ParseCategoryFilter(q.Get("category"))
	if err != nil {
		return domain.ArticleFilter{}, err
	}
	filter.Category = category

	subcategory, err := domain.ParseSubcategory(q.Get("subcategory"))
	if err != nil {
		return domain.ArticleFilter{}, err
	}
	filter.Subcategory = subcategory

	filter.Tag = q.Get("tag")

	if q.Has("trending") {
		trending, err := strconv.ParseBool(q.Get("trending"))
		if err != nil {
			return domain.ArticleFilter{}, &domain.ValidationError{
				Field:  "trending",
				Value:  q.Get("trending"),
				Reason: "not a boolean",
			}
		}
		filter.TrendingOnly = trending
	}

	filter.Limit, err = parseLimit(q)
	if err != nil {
		return domain.ArticleFilter{}, err
	}

	return filter, nil
}
