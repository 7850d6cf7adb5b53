package command

import (
	"context"
	"fmt"

	"github.com/ieee-igdtuw/techfeed/internal/datasources"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

type ListChallengesRequest struct {
	Limit int
}

type ListChallenges struct {
	Lister       datasources.ChallengeLister
	DefaultLimit int
}

func NewListChallenges(lister datasources.ChallengeLister, defaultLimit int) *ListChallenges {
	return &ListChallenges{
		Lister:       lister,
		DefaultLimit: defaultLimit,
	}
}

func (c *ListChallenges) Execute(ctx context.Context, req ListChallengesRequest) ([]domain.CodingChallenge, error) {
	limit := req.Limit
	if limit == 0 {
		limit = c.DefaultLimit
	}
	if limit < 1 {
		return nil, &domain.ValidationError{Field: "limit", Value: fmt.Sprint(limit), Reason: "must be positive"}
	}

	challenges, err := c.Lister.ListChallenges(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", asStoreError("list challenges", err))
	}
	if challenges == nil {
		challenges = []domain.CodingChallenge{}
	}
	return challenges, nil
}

type GetChallengeRequest struct {
	ChallengeID string
}

type GetChallenge struct {
	Getter datasources.ChallengeGetter
}

func NewGetChallenge(getter datasources.ChallengeGetter) *GetChallenge {
	return &GetChallenge{Getter: getter}
}

func (c *GetChallenge) Execute(ctx context.Context, req GetChallengeRequest) (domain.CodingChallenge, error) {
	if req.ChallengeID == "" {
		return domain.CodingChallenge{}, &domain.ValidationError{Field: "challenge_id", Reason: "must not be empty"}
	}
	challenge, err := c.Getter.GetChallenge(ctx, req.ChallengeID)
	if err != nil {
		return domain.CodingChallenge{}, fmt.Errorf("fetching challenge: %w", asStoreError("get challenge", err))
	}
	return challenge, nil
}
