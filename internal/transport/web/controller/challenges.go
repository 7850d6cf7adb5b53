package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/ieee-igdtuw/techfeed/internal/command"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/samber/lo"
)

type ClassifiedChallenge struct {
	domain.CodingChallenge
	Classification domain.ChallengeClassification `json:"classification"`
}

func classifyChallenge(c domain.CodingChallenge, _ int) ClassifiedChallenge {
	return ClassifiedChallenge{CodingChallenge: c, Classification: domain.ClassifyChallenge(c)}
}

type ChallengesList struct {
	ListCmd     command.Command[command.ListChallengesRequest, []domain.CodingChallenge]
	CacheMaxAge time.Duration
}

type ChallengesListResponse struct {
	Data     []ClassifiedChallenge  `json:"data"`
	Metadata ChallengesListMetadata `json:"metadata"`
}

type ChallengesListMetadata struct {
	Count int `json:"count"`
}

func (c ChallengesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r.URL.Query())
	if err != nil {
		writeError(ctx, w, "unable to parse challenge list limit", err)
		return
	}

	challenges, err := c.ListCmd.Execute(ctx, command.ListChallengesRequest{Limit: limit})
	if err != nil {
		writeError(ctx, w, "unable to list challenges", err)
		return
	}

	setCacheMaxAge(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ChallengesListResponse{
		Data:     lo.Map(challenges, classifyChallenge),
		Metadata: ChallengesListMetadata{Count: len(challenges)},
	})
}

type ChallengeGet struct {
	GetCmd      command.Command[command.GetChallengeRequest, domain.CodingChallenge]
	CacheMaxAge time.Duration
}

type ChallengeGetResponse struct {
	Data ClassifiedChallenge `json:"data"`
}

func (c ChallengeGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	challengeID := mux.Vars(r)["challenge_id"]

	challenge, err := c.GetCmd.Execute(ctx, command.GetChallengeRequest{ChallengeID: challengeID})
	if err != nil {
		writeError(ctx, w, "unable to fetch challenge", err)
		return
	}

	setCacheMaxAge(ctx, w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ChallengeGetResponse{Data: classifyChallenge(challenge, 0)})
}
