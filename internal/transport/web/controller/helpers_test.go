package controller

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/datasources/memory"
	"github.com/ieee-igdtuw/techfeed/internal/domain"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

var testTime = time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, a := range []domain.Article{
		{
			ID: "ai-1", Title: "Quantum Leap", Summary: "Error correction",
			Category: domain.CategoryAI, Subcategory: domain.SubcategoryQuantumComputing,
			SourceURL: "https://example.com/quantum", SourceName: "Example",
			IsTrending: true, ViewCount: 5, Tags: []string{"physics"},
			PublishedAt: testTime,
		},
		{
			ID: "ieee-1", Title: "Standards meeting", Summary: "802.11bn progress",
			Category: domain.CategoryIEEEUpdates, PublishedAt: testTime.Add(-time.Hour),
		},
	} {
		require.NoError(t, s.PutArticle(a))
	}
	require.NoError(t, s.PutChallenge(domain.CodingChallenge{
		ID: "two-sum", Title: "Two sum", Difficulty: domain.DifficultyMedium,
		Languages: []string{"go"}, PublishedAt: testTime,
	}))
	return s
}

func decodedIDs(articles []domain.ClassifiedArticle) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}
