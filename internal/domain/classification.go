package domain

// Color is the neon accent a card is rendered with.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorViolet Color = "violet"
	ColorPink   Color = "pink"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

const imageBaseURL = "https://ieee.igdtuw.ac.in/images/"

// Treatment is the background applied to a card that has no image of its own.
type Treatment struct {
	FallbackImageURL string `json:"fallback_image_url"`
}

type categoryStyle struct {
	color     Color
	treatment Treatment
}

var defaultTreatment = Treatment{FallbackImageURL: imageBaseURL + "ai.jpg"}

// Every Category must have an entry; see TestClassify_CoversEveryCategory.
var categoryStyles = map[Category]categoryStyle{
	CategoryTrending:      {color: ColorBlue, treatment: defaultTreatment},
	CategoryAI:            {color: ColorPurple, treatment: defaultTreatment},
	CategoryResearch:      {color: ColorViolet, treatment: defaultTreatment},
	CategoryDeveloper:     {color: ColorPink, treatment: defaultTreatment},
	CategoryIEEEUpdates:   {color: ColorBlue, treatment: defaultTreatment},
	CategoryOpportunities: {color: ColorPurple, treatment: defaultTreatment},
}

var subcategoryTreatments = map[Subcategory]Treatment{
	SubcategoryArtificialIntelligence: {FallbackImageURL: imageBaseURL + "ai.jpg"},
	SubcategoryCybersecurity:          {FallbackImageURL: imageBaseURL + "cybersecurity.jpg"},
	SubcategoryRobotics:               {FallbackImageURL: imageBaseURL + "robotics.jpg"},
	SubcategoryQuantumComputing:       {FallbackImageURL: imageBaseURL + "quantum.jpg"},
	SubcategorySoftwareEngineering:    {FallbackImageURL: imageBaseURL + "software.jpg"},
}

// Classification is how an article is placed and styled in the feed.
type Classification struct {
	Section      Category  `json:"section"`
	DisplayColor Color     `json:"display_color"`
	Treatment    Treatment `json:"treatment"`
	// ImageURL is the article's own image, or the treatment fallback when it has none.
	ImageURL string `json:"image_url"`
}

// Classify places an article in the section named by its category. Unmapped
// subcategories fall back to the category's default treatment.
func Classify(a Article) Classification {
	style, ok := categoryStyles[a.Category]
	if !ok {
		style = categoryStyle{color: ColorBlue, treatment: defaultTreatment}
	}

	treatment := style.treatment
	if t, ok := subcategoryTreatments[a.Subcategory]; ok {
		treatment = t
	}

	image := a.ImageURL
	if image == "" {
		image = treatment.FallbackImageURL
	}

	return Classification{
		Section:      a.Category,
		DisplayColor: style.color,
		Treatment:    treatment,
		ImageURL:     image,
	}
}

// ChallengeClassification is the display tier of a coding challenge.
type ChallengeClassification struct {
	Tier         SeverityTier `json:"tier"`
	DisplayColor Color        `json:"display_color"`
}

var difficultyColors = map[Difficulty]Color{
	DifficultyEasy:   ColorGreen,
	DifficultyMedium: ColorYellow,
	DifficultyHard:   ColorRed,
}

func ClassifyChallenge(c CodingChallenge) ChallengeClassification {
	return ChallengeClassification{
		Tier:         c.Difficulty.Tier(),
		DisplayColor: difficultyColors[c.Difficulty],
	}
}

// ClassifiedArticle pairs an article with its classification for presentation.
type ClassifiedArticle struct {
	Article
	Classification Classification `json:"classification"`
}

func ClassifyAll(articles []Article) []ClassifiedArticle {
	out := make([]ClassifiedArticle, 0, len(articles))
	for _, a := range articles {
		out = append(out, ClassifiedArticle{Article: a, Classification: Classify(a)})
	}
	return out
}
