package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/datasources/memory"
	"github.com/ieee-igdtuw/techfeed/internal/datasources/mocks"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListChallenges_Execute(t *testing.T) {
	store := memory.New()
	for i, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		require.NoError(t, store.PutChallenge(domain.CodingChallenge{
			ID:          string(d),
			Title:       "challenge " + string(d),
			Difficulty:  d,
			Languages:   []string{"go"},
			PublishedAt: time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
		}))
	}

	challenges, err := NewListChallenges(store, 2).Execute(context.Background(), ListChallengesRequest{})
	require.NoError(t, err)
	require.Len(t, challenges, 2)
	assert.Equal(t, "hard", challenges[0].ID)
	assert.Equal(t, "medium", challenges[1].ID)

	_, err = NewListChallenges(store, 2).Execute(context.Background(), ListChallengesRequest{Limit: -3})
	var validationErr *domain.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	challenge, err := NewGetChallenge(store).Execute(context.Background(), GetChallengeRequest{ChallengeID: "easy"})
	require.NoError(t, err)
	assert.Equal(t, domain.DifficultyEasy, challenge.Difficulty)

	_, err = NewGetChallenge(store).Execute(context.Background(), GetChallengeRequest{ChallengeID: "missing"})
	var notFound *domain.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestListChallenges_StoreFailure(t *testing.T) {
	lister := mocks.NewMockChallengeLister(t)
	lister.EXPECT().ListChallenges(mock.Anything, 5).Return(nil, errors.New("i/o timeout")).Once()

	_, err := NewListChallenges(lister, 5).Execute(context.Background(), ListChallengesRequest{})
	var storeErr *domain.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "list challenges", storeErr.Op)
}
