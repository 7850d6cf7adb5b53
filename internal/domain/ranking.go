package domain

import (
	"slices"

	"github.com/samber/lo"
)

// RankingPolicy selects how a set of articles is ordered. Policies are never mixed.
type RankingPolicy string

const (
	// RankRecency orders by published date, newest first, then by creation date.
	RankRecency RankingPolicy = "recency"
	// RankTrending keeps only trending articles, ordered by view count then recency.
	RankTrending RankingPolicy = "trending"
)

// Rank returns a new slice ordered by policy and truncated to limit.
// A non-positive limit means no truncation. The input is not modified.
func Rank(articles []Article, policy RankingPolicy, limit int) []Article {
	var ranked []Article
	switch policy {
	case RankTrending:
		ranked = lo.Filter(articles, func(a Article, _ int) bool { return a.IsTrending })
		slices.SortStableFunc(ranked, CompareTrending)
	default:
		ranked = slices.Clone(articles)
		slices.SortStableFunc(ranked, CompareRecency)
	}

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []Article{}
	}
	return ranked
}

// CompareRecency orders newest first. ID is the final key so no two distinct
// articles ever compare equal.
func CompareRecency(a, b Article) int {
	if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
		return c
	}
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}

func CompareTrending(a, b Article) int {
	switch {
	case a.ViewCount > b.ViewCount:
		return -1
	case a.ViewCount < b.ViewCount:
		return 1
	}
	return CompareRecency(a, b)
}
