package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/microcosm-cc/bluemonday"
)

const rssItemLimit = 20

// rssDescriptionPolicy strips all markup from stored summaries before they are
// embedded in feed items.
var rssDescriptionPolicy = bluemonday.StrictPolicy()

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	ListCmd         command.Command[command.ListArticlesRequest, []domain.Article]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category, err := domain.ParseCategoryFilter(r.URL.Query().Get("category"))
	if err != nil {
		writeError(ctx, w, "unable to parse feed category", err)
		return
	}

	title := "IEEE IGDTUW Tech Feed"
	if category != domain.CategoryAll {
		title += " - " + strings.ReplaceAll(string(category), "_", " ")
	}

	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest technology articles, IEEE updates and opportunities",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	articles, err := c.ListCmd.Execute(ctx, command.ListArticlesRequest{
		Filter: domain.ArticleFilter{Category: category, Limit: rssItemLimit},
	})
	if err != nil {
		writeError(ctx, w, "unable to fetch articles for feed", err)
		return
	}

	for _, a := range articles {
		link := a.SourceURL
		if link == "" {
			link = c.FeedHostname + "/v1/articles/" + a.ID
		}
		item := &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: link},
			Description: strings.TrimSpace(rssDescriptionPolicy.Sanitize(a.Summary)),
			Author:      &feeds.Author{Name: a.SourceName},
			Created:     a.PublishedAt,
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
