package command

import (
	"testing"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/datasources/memory"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/require"
)

func testLimits() FeedLimits {
	return FeedLimits{
		Section:     6,
		Trending:    10,
		Search:      20,
		Category:    20,
		Subcategory: 15,
		Challenges:  5,
		Bookmarks:   20,
	}
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, a := range []domain.Article{
		{
			ID: "q-1", Title: "Quantum error correction", Summary: "Logical qubits at scale",
			Category: domain.CategoryResearch, Subcategory: domain.SubcategoryQuantumComputing,
			ViewCount: 5, PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "ai-1", Title: "Small models", Summary: "Distillation tricks",
			Category: domain.CategoryAI, Tags: []string{"llm"},
			PublishedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "dev-1", Title: "Go 1.24 released", Summary: "Generic type aliases",
			Category: domain.CategoryDeveloper, IsTrending: true, ViewCount: 40,
			PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	} {
		require.NoError(t, s.PutArticle(a))
	}
	return s
}

func ids(articles []domain.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}
