package domain

import (
	"strings"

	"github.com/samber/lo"
)

// NormalizeQuery trims a search query. ok is false when nothing is left, which
// callers must treat as "no filter" rather than as a query.
func NormalizeQuery(q string) (normalized string, ok bool) {
	normalized = strings.TrimSpace(q)
	return normalized, normalized != ""
}

// MatchesQuery reports whether q is a case-insensitive substring of the title
// or summary, or case-insensitively equal to one of the tags. Matching is by
// substring, not by token, so "net" matches "network".
func MatchesQuery(a Article, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(a.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), q) {
		return true
	}
	return HasTag(a, q)
}

// HasTag compares case-insensitively.
func HasTag(a Article, tag string) bool {
	return lo.ContainsBy(a.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// MatchesFilter applies every constraint of f except Limit and ordering.
func MatchesFilter(a Article, f ArticleFilter) bool {
	if f.HasCategory() && a.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && a.Subcategory != f.Subcategory {
		return false
	}
	if f.TrendingOnly && !a.IsTrending {
		return false
	}
	if f.Tag != "" && !HasTag(a, f.Tag) {
		return false
	}
	if q, ok := NormalizeQuery(f.Query); ok && !MatchesQuery(a, q) {
		return false
	}
	return true
}
