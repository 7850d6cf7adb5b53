package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ids(articles []Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestRank(t *testing.T) {
	articles := []Article{
		{ID: "jan", Category: CategoryAI, PublishedAt: day(2024, 1, 1), CreatedAt: day(2024, 1, 1)},
		{ID: "mar", Category: CategoryAI, PublishedAt: day(2024, 3, 1), CreatedAt: day(2024, 3, 1), IsTrending: true, ViewCount: 3},
		{ID: "feb", Category: CategoryAI, PublishedAt: day(2024, 2, 1), CreatedAt: day(2024, 2, 1), IsTrending: true, ViewCount: 9},
		{ID: "feb-later-created", Category: CategoryAI, PublishedAt: day(2024, 2, 1), CreatedAt: day(2024, 2, 5), IsTrending: true, ViewCount: 3},
	}

	cases := []struct {
		name     string
		policy   RankingPolicy
		limit    int
		expected []string
	}{
		{
			name:     "recency_limit_two",
			policy:   RankRecency,
			limit:    2,
			expected: []string{"mar", "feb-later-created"},
		},
		{
			name:     "recency_breaks_ties_by_created",
			policy:   RankRecency,
			limit:    10,
			expected: []string{"mar", "feb-later-created", "feb", "jan"},
		},
		{
			name:     "trending_by_views_then_recency",
			policy:   RankTrending,
			limit:    10,
			expected: []string{"feb", "mar", "feb-later-created"},
		},
		{
			name:     "trending_limit_one",
			policy:   RankTrending,
			limit:    1,
			expected: []string{"feb"},
		},
		{
			name:     "no_limit",
			policy:   RankRecency,
			limit:    0,
			expected: []string{"mar", "feb-later-created", "feb", "jan"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(Rank(articles, tc.policy, tc.limit)))
		})
	}
}

func TestRank_AICategoryScenario(t *testing.T) {
	articles := []Article{
		{ID: "a", Category: CategoryAI, PublishedAt: day(2024, 1, 1)},
		{ID: "b", Category: CategoryAI, PublishedAt: day(2024, 3, 1)},
		{ID: "c", Category: CategoryAI, PublishedAt: day(2024, 2, 1)},
	}

	ranked := Rank(articles, RankRecency, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, day(2024, 3, 1), ranked[0].PublishedAt)
	assert.Equal(t, day(2024, 2, 1), ranked[1].PublishedAt)
}

func TestRank_Deterministic(t *testing.T) {
	same := day(2024, 5, 5)
	articles := []Article{
		{ID: "z", PublishedAt: same, CreatedAt: same, IsTrending: true, ViewCount: 1},
		{ID: "m", PublishedAt: same, CreatedAt: same, IsTrending: true, ViewCount: 1},
		{ID: "a", PublishedAt: same, CreatedAt: same, IsTrending: true, ViewCount: 1},
	}
	reversed := []Article{articles[2], articles[1], articles[0]}

	for _, policy := range []RankingPolicy{RankRecency, RankTrending} {
		first := ids(Rank(articles, policy, 10))
		assert.Equal(t, first, ids(Rank(articles, policy, 10)))
		assert.Equal(t, first, ids(Rank(reversed, policy, 10)), "input order must not matter")
		assert.Equal(t, []string{"a", "m", "z"}, first)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	articles := []Article{
		{ID: "old", PublishedAt: day(2023, 1, 1)},
		{ID: "new", PublishedAt: day(2024, 1, 1)},
	}

	_ = Rank(articles, RankRecency, 10)

	assert.Equal(t, []string{"old", "new"}, ids(articles))
}

func TestRank_EmptyInput(t *testing.T) {
	assert.Equal(t, []Article{}, Rank(nil, RankTrending, 10))
	assert.Equal(t, []Article{}, Rank(nil, RankRecency, 10))
}
