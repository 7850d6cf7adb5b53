package domain

import (
	"encoding/json"
	"time"
)

// Difficulty of a coding challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SeverityTier orders difficulties for display; higher is harder.
type SeverityTier int

const (
	TierUnknown SeverityTier = iota
	TierEasy
	TierMedium
	TierHard
)

func (d Difficulty) Tier() SeverityTier {
	switch d {
	case DifficultyEasy:
		return TierEasy
	case DifficultyMedium:
		return TierMedium
	case DifficultyHard:
		return TierHard
	}
	return TierUnknown
}

func (d Difficulty) Valid() bool {
	return d.Tier() != TierUnknown
}

type CodingChallenge struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Difficulty  Difficulty      `json:"difficulty"`
	Languages   []string        `json:"language"`
	StarterCode string          `json:"starter_code,omitempty"`
	Solution    string          `json:"solution,omitempty"`
	TestCases   json.RawMessage `json:"test_cases,omitempty"`
	PublishedAt time.Time       `json:"published_at"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (c CodingChallenge) Validate() error {
	if !c.Difficulty.Valid() {
		return &ValidationError{Field: "difficulty", Value: string(c.Difficulty), Reason: "unknown difficulty"}
	}
	if len(c.Languages) == 0 {
		return &ValidationError{Field: "language", Value: c.ID, Reason: "challenge has no languages"}
	}
	return nil
}
