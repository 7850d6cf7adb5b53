package datasources

import (
	"context"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

// ArticleLister fetches articles matching a filter, ordered by the filter's
// ranking policy and never more than filter.Limit. An empty result is not an error.
type ArticleLister interface {
	ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
}

// ArticleGetter returns a *domain.NotFoundError when no article has the ID.
type ArticleGetter interface {
	GetArticle(ctx context.Context, id string) (domain.Article, error)
}

type ChallengeLister interface {
	ListChallenges(ctx context.Context, limit int) ([]domain.CodingChallenge, error)
}

type ChallengeGetter interface {
	GetChallenge(ctx context.Context, id string) (domain.CodingChallenge, error)
}
