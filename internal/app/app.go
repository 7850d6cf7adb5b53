package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/cache"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/memory"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/mysql"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/ieee-igdtuw/techfeed/internal/feed"
	"github.com/ieee-igdtuw/techfeed/internal/transport/web/router"
	"github.com/ieee-igdtuw/techfeed/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupFeedRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up feed repository: %w", err)
	}

	repo, err := setupListCache(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("setting up list cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	limits := DefaultFeedLimits()

	listArticlesCmd := command.NewListArticles(repo, limits.Category)
	searchArticlesCmd := command.NewSearchArticles(repo, limits.Search)
	listChallengesCmd := command.NewListChallenges(repo, limits.Challenges)
	setBookmarkCmd := command.NewSetBookmark(repo, repo)
	recordViewCmd := command.NewRecordArticleView(repo, repo)

	sessions := feed.NewRegistry(
		feed.Commands{
			ListArticles:   listArticlesCmd,
			SearchArticles: searchArticlesCmd,
			ListChallenges: listChallengesCmd,
			LoadBookmarks:  command.NewLoadBookmarkSet(repo),
			ToggleBookmark: command.NewToggleBookmark(setBookmarkCmd),
		},
		limits,
		MustGetEnvAsDuration(ctx, "SESSION_IDLE_TTL"),
		maxSessions,
	)

	httpRouter, err := router.MakeRouter(
		ctx,
		router.Commands{
			ListArticles:           listArticlesCmd,
			SearchArticles:         searchArticlesCmd,
			GetArticle:             command.NewGetArticle(repo, recordViewCmd),
			SetBookmark:            setBookmarkCmd,
			ListBookmarkedArticles: command.NewListBookmarkedArticles(repo, limits.Bookmarks),
			ListChallenges:         listChallengesCmd,
			GetChallenge:           command.NewGetChallenge(repo),
			ListSections:           command.NewListSections(repo, limits.Section),
		},
		sessions,
		limits,
		router.RSSConfig{
			BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			CacheMaxAge: MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
		},
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		sessions,
	}, nil
}

func setupFeedRepository(ctx context.Context) (datasources.FeedRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORE_DRIVER"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return mysql.New(db), nil
	case "memory":
		store := memory.New()
		if path, ok := os.LookupEnv("MEMORY_SEED_FILE"); ok && path != "" {
			if err := loadSeedFile(store, path); err != nil {
				return nil, err
			}
			logger := domain.LoggerFromContext(ctx)
			logger.InfoContext(ctx, "loaded memory store seed", "path", path)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store driver [%s]", driver)
	}
}

func loadSeedFile(store *memory.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	if err := store.LoadSeed(f); err != nil {
		return fmt.Errorf("loading seed file [%s]: %w", path, err)
	}
	return nil
}

func setupListCache(ctx context.Context, repo datasources.FeedRepository) (datasources.FeedRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		return repo, nil
	case "memory":
		return cache.NewLister(repo, cache.NewMemory(MustGetEnvAsDuration(ctx, "CACHE_TTL"), maxCachedLists)), nil
	case "redis":
		client, err := cache.ConnectRedis(
			ctx,
			MustGetEnvAsString(ctx, "REDIS_ADDR"),
			MustGetEnvAsString(ctx, "REDIS_PASSWORD"),
			MustGetEnvAsInt(ctx, "REDIS_DB"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return cache.NewLister(repo, cache.NewRedis(client, MustGetEnvAsDuration(ctx, "CACHE_TTL"))), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
