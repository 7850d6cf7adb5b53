package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Commands are the engine operations exposed over HTTP.
type Commands struct {
	ListArticles           command.Command[command.ListArticlesRequest, []domain.Article]
	SearchArticles         command.Command[command.SearchArticlesRequest, []domain.Article]
	GetArticle             command.Command[command.GetArticleRequest, domain.Article]
	SetBookmark            command.Command[command.SetBookmarkRequest, command.Empty]
	ListBookmarkedArticles command.Command[command.ListBookmarkedArticlesRequest, []domain.Article]
	ListChallenges         command.Command[command.ListChallengesRequest, []domain.CodingChallenge]
	GetChallenge           command.Command[command.GetChallengeRequest, domain.CodingChallenge]
	ListSections           command.Command[command.Empty, []command.Section]
}

type RSSConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
	CacheMaxAge time.Duration
}

func MakeRouter(
	ctx context.Context,
	cmds Commands,
	sessions controller.SessionRegistry,
	limits command.FeedLimits,
	rss RSSConfig,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(domain.LoggerFromContext(ctx)))
	r.Use(metricsMiddleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Handle("/v1/feed", controller.FeedSections{
		ListCmd:     cmds.ListSections,
		CacheMaxAge: rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", controller.ArticlesList{
		ListCmd:      cmds.ListArticles,
		DefaultLimit: limits.Category,
		CacheMaxAge:  rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/trending", controller.ArticlesList{
		ListCmd:      cmds.ListArticles,
		TrendingOnly: true,
		DefaultLimit: limits.Trending,
		CacheMaxAge:  rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/search", controller.ArticlesSearch{
		SearchCmd: cmds.SearchArticles,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		GetCmd:      cmds.GetArticle,
		CacheMaxAge: rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/bookmark", requireAuthMiddleware(controller.ArticleBookmarkSet{
		SetCmd:     cmds.SetBookmark,
		Bookmarked: true,
	})).Methods(http.MethodPut, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/bookmark", requireAuthMiddleware(controller.ArticleBookmarkSet{
		SetCmd:     cmds.SetBookmark,
		Bookmarked: false,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/bookmarks", requireAuthMiddleware(controller.BookmarksList{
		ListCmd: cmds.ListBookmarkedArticles,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/challenges", controller.ChallengesList{
		ListCmd:     cmds.ListChallenges,
		CacheMaxAge: rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/challenges/{challenge_id}", controller.ChallengeGet{
		GetCmd:      cmds.GetChallenge,
		CacheMaxAge: rss.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	sessionLimiter := newClientRateLimiter(sessionCreateRate, sessionCreateBurst)
	r.Handle("/v1/sessions", sessionLimiter.middleware(controller.SessionCreate{
		Registry: sessions,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/sessions/{session_id}", controller.SessionGet{
		Registry: sessions,
	}).Methods(http.MethodGet, http.MethodOptions)

	sessionActions := map[string]controller.SessionAction{
		"/v1/sessions/{session_id}/section/{category}": {Registry: sessions, Action: controller.LoadSectionAction},
		"/v1/sessions/{session_id}/search":             {Registry: sessions, Action: controller.SearchAction},
		"/v1/sessions/{session_id}/trending":           {Registry: sessions, Action: controller.LoadTrendingAction},
		"/v1/sessions/{session_id}/challenges":         {Registry: sessions, Action: controller.LoadChallengesAction},
	}
	for path, action := range sessionActions {
		r.Handle(path, action).Methods(http.MethodPost, http.MethodOptions)
	}

	r.Handle("/v1/sessions/{session_id}/bookmarks/{article_id}/toggle", requireAuthMiddleware(controller.SessionAction{
		Registry: sessions,
		Action:   controller.ToggleBookmarkAction,
	})).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rss.BaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rss.AuthorName,
			FeedAuthorEmail: rss.AuthorEmail,
			ListCmd:         cmds.ListArticles,
			CacheMaxAge:     rss.CacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
