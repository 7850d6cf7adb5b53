package domain

import (
	"time"
)

// Category is the closed set of feed sections an article belongs to.
type Category string

const (
	CategoryTrending      Category = "trending"
	CategoryAI            Category = "ai"
	CategoryResearch      Category = "research"
	CategoryDeveloper     Category = "developer"
	CategoryIEEEUpdates   Category = "ieee_updates"
	CategoryOpportunities Category = "opportunities"
)

// CategoryAll selects every category. It is a filter value only, never stored on an article.
const CategoryAll Category = "all"

var Categories = []Category{
	CategoryTrending,
	CategoryAI,
	CategoryResearch,
	CategoryDeveloper,
	CategoryIEEEUpdates,
	CategoryOpportunities,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTrending, CategoryAI, CategoryResearch,
		CategoryDeveloper, CategoryIEEEUpdates, CategoryOpportunities:
		return true
	}
	return false
}

// ParseCategory converts a raw value into a Category, rejecting anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", &ValidationError{Field: "category", Value: s, Reason: "unknown category"}
	}
	return c, nil
}

// ParseCategoryFilter is ParseCategory that also accepts "all" and the empty string, both meaning no filter.
func ParseCategoryFilter(s string) (Category, error) {
	if s == "" || Category(s) == CategoryAll {
		return CategoryAll, nil
	}
	return ParseCategory(s)
}

type Subcategory string

const (
	SubcategoryArtificialIntelligence Subcategory = "Artificial Intelligence"
	SubcategoryCybersecurity          Subcategory = "Cybersecurity"
	SubcategoryRobotics               Subcategory = "Robotics"
	SubcategoryQuantumComputing       Subcategory = "Quantum Computing"
	SubcategorySoftwareEngineering    Subcategory = "Software Engineering"
	SubcategoryStandards              Subcategory = "Standards"
	SubcategoryStudentAchievement     Subcategory = "Student Achievement"
	SubcategoryWorkshops              Subcategory = "Workshops"
	SubcategoryProgrammingTips        Subcategory = "Programming Tips"
	SubcategoryDeveloperTools         Subcategory = "Developer Tools"
	SubcategoryInternships            Subcategory = "Internships"
	SubcategoryHackathons             Subcategory = "Hackathons"
	SubcategoryTechCompetitions       Subcategory = "Tech Competitions"
)

var Subcategories = []Subcategory{
	SubcategoryArtificialIntelligence,
	SubcategoryCybersecurity,
	SubcategoryRobotics,
	SubcategoryQuantumComputing,
	SubcategorySoftwareEngineering,
	SubcategoryStandards,
	SubcategoryStudentAchievement,
	SubcategoryWorkshops,
	SubcategoryProgrammingTips,
	SubcategoryDeveloperTools,
	SubcategoryInternships,
	SubcategoryHackathons,
	SubcategoryTechCompetitions,
}

func (s Subcategory) Valid() bool {
	for _, known := range Subcategories {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSubcategory accepts the empty string as "no subcategory".
func ParseSubcategory(s string) (Subcategory, error) {
	if s == "" {
		return "", nil
	}
	sub := Subcategory(s)
	if !sub.Valid() {
		return "", &ValidationError{Field: "subcategory", Value: s, Reason: "unknown subcategory"}
	}
	return sub, nil
}

type Article struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Summary     string      `json:"summary"`
	FullContent string      `json:"full_content,omitempty"`
	Category    Category    `json:"category"`
	Subcategory Subcategory `json:"subcategory,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	SourceURL   string      `json:"source_url,omitempty"`
	SourceName  string      `json:"source_name,omitempty"`
	Tags        []string    `json:"tags"`
	IsTrending  bool        `json:"is_trending"`
	ViewCount   int64       `json:"view_count"`
	AITLDR      string      `json:"ai_tldr,omitempty"`
	PublishedAt time.Time   `json:"published_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Validate checks the closed-set fields of an article read from a store.
func (a Article) Validate() error {
	if !a.Category.Valid() {
		return &ValidationError{Field: "category", Value: string(a.Category), Reason: "unknown category"}
	}
	if a.Subcategory != "" && !a.Subcategory.Valid() {
		return &ValidationError{Field: "subcategory", Value: string(a.Subcategory), Reason: "unknown subcategory"}
	}
	return nil
}

// ArticleFilter describes an article list query. Zero values mean "no constraint",
// except Limit which must be positive.
type ArticleFilter struct {
	Category     Category
	Subcategory  Subcategory
	TrendingOnly bool
	Tag          string
	Query        string
	Limit        int
}

// Policy returns the ordering the filter asks for.
func (f ArticleFilter) Policy() RankingPolicy {
	if f.TrendingOnly {
		return RankTrending
	}
	return RankRecency
}

func (f ArticleFilter) Validate() error {
	if f.Category != "" && f.Category != CategoryAll && !f.Category.Valid() {
		return &ValidationError{Field: "category", Value: string(f.Category), Reason: "unknown category"}
	}
	if f.Subcategory != "" && !f.Subcategory.Valid() {
		return &ValidationError{Field: "subcategory", Value: string(f.Subcategory), Reason: "unknown subcategory"}
	}
	if f.Limit < 1 {
		return &ValidationError{Field: "limit", Value: itoa(f.Limit), Reason: "must be positive"}
	}
	return nil
}

// HasCategory reports whether the filter constrains the category.
func (f ArticleFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}
