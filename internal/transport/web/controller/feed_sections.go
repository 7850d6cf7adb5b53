package controller

import (
	"net/http"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// FeedSections serves the head of every section in one response.
type FeedSections struct {
	ListCmd     command.Command[command.Empty, []command.Section]
	CacheMaxAge time.Duration
}

type FeedSection struct {
	Category domain.Category            `json:"category"`
	Articles []domain.ClassifiedArticle `json:"articles"`
}

type FeedSectionsResponse struct {
	Data []FeedSection `json:"data"`
}

func (c FeedSections) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sections, err := c.ListCmd.Execute(ctx, command.Empty{})
	if err != nil {
		writeError(ctx, w, "unable to list feed sections", err)
		return
	}

	resp := FeedSectionsResponse{Data: make([]FeedSection, 0, len(sections))}
	for _, s := range sections {
		resp.Data = append(resp.Data, FeedSection{
			Category: s.Category,
			Articles: domain.ClassifyAll(s.Articles),
		})
	}

	setCacheMaxAge(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, resp)
}
