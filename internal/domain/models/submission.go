package models

import (
	"encoding/json"
	"time"
)

const DefaultTitle = "Untitled Analysis"

type Submission struct {
	ID        string     `json:"id" db:"id"`
	OwnerID   int64      `json:"owner_id" db:"owner_id"`
	Title     string     `json:"title" db:"title"`
	Text      string     `json:"text" db:"text"`
	Analysis  Analysis   `json:"analysis"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// Analysis is the structured result returned by the scorer for exactly
// the text stored on the submission.
type Analysis struct {
	AIInfluence  float64      `json:"ai_influence"`
	QualityScore float64      `json:"quality_score"`
	Readability  Readability  `json:"readability"`
	Suggestions  []Suggestion `json:"suggestions"`
	Strengths    []Strength   `json:"strengths"`
}

type Readability struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

type Suggestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type Strength struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// AnalysisPatch carries the revisable analysis fields. Nil fields are
// left untouched by a revision.
type AnalysisPatch struct {
	AIInfluence  *float64     `json:"ai_influence,omitempty"`
	QualityScore *float64     `json:"quality_score,omitempty"`
	Readability  *Readability `json:"readability,omitempty"`
	Suggestions  []Suggestion `json:"suggestions,omitempty"`
	Strengths    []Strength   `json:"strengths,omitempty"`
}

// CategoryGeneral is assigned when a legacy record carries no category tag.
const CategoryGeneral = "general"

// UnmarshalJSON accepts both the canonical {text, category} object and the
// legacy plain-string form that older records were stored with.
func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Text = plain
		s.Category = CategoryGeneral
		return nil
	}

	type suggestion Suggestion
	var full suggestion
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	if full.Category == "" {
		full.Category = CategoryGeneral
	}
	*s = Suggestion(full)
	return nil
}

// UnmarshalJSON mirrors Suggestion's legacy tolerance.
func (s *Strength) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Text = plain
		s.Category = CategoryGeneral
		return nil
	}

	type strength Strength
	var full strength
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	if full.Category == "" {
		full.Category = CategoryGeneral
	}
	*s = Strength(full)
	return nil
}
