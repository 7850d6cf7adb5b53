package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_CoversEveryCategory(t *testing.T) {
	for _, c := range Categories {
		t.Run(string(c), func(t *testing.T) {
			_, ok := categoryStyles[c]
			require.True(t, ok, "category has no style")

			got := Classify(Article{Category: c})
			assert.Equal(t, c, got.Section)
			assert.NotEmpty(t, got.DisplayColor)
			assert.NotEmpty(t, got.ImageURL)
		})
	}
}

func TestClassify_EverySubcategoryIsTotal(t *testing.T) {
	for _, c := range Categories {
		for _, s := range Subcategories {
			got := Classify(Article{Category: c, Subcategory: s})
			assert.Equal(t, c, got.Section)
			assert.NotEmpty(t, got.Treatment.FallbackImageURL, "%s/%s", c, s)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		article  Article
		expected Classification
	}{
		{
			name:    "mapped_subcategory",
			article: Article{Category: CategoryAI, Subcategory: SubcategoryRobotics},
			expected: Classification{
				Section:      CategoryAI,
				DisplayColor: ColorPurple,
				Treatment:    Treatment{FallbackImageURL: imageBaseURL + "robotics.jpg"},
				ImageURL:     imageBaseURL + "robotics.jpg",
			},
		},
		{
			name:    "unmapped_subcategory_uses_category_default",
			article: Article{Category: CategoryOpportunities, Subcategory: SubcategoryHackathons},
			expected: Classification{
				Section:      CategoryOpportunities,
				DisplayColor: ColorPurple,
				Treatment:    defaultTreatment,
				ImageURL:     defaultTreatment.FallbackImageURL,
			},
		},
		{
			name:    "no_subcategory",
			article: Article{Category: CategoryDeveloper},
			expected: Classification{
				Section:      CategoryDeveloper,
				DisplayColor: ColorPink,
				Treatment:    defaultTreatment,
				ImageURL:     defaultTreatment.FallbackImageURL,
			},
		},
		{
			name:    "own_image_wins",
			article: Article{Category: CategoryResearch, ImageURL: "https://example.org/cover.png"},
			expected: Classification{
				Section:      CategoryResearch,
				DisplayColor: ColorViolet,
				Treatment:    defaultTreatment,
				ImageURL:     "https://example.org/cover.png",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.article))
		})
	}
}

func TestClassifyChallenge(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		tier       SeverityTier
		color      Color
	}{
		{difficulty: DifficultyEasy, tier: TierEasy, color: ColorGreen},
		{difficulty: DifficultyMedium, tier: TierMedium, color: ColorYellow},
		{difficulty: DifficultyHard, tier: TierHard, color: ColorRed},
	}

	for _, tc := range cases {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			got := ClassifyChallenge(CodingChallenge{Difficulty: tc.difficulty})
			assert.Equal(t, tc.tier, got.Tier)
			assert.Equal(t, tc.color, got.DisplayColor)
		})
	}
}
