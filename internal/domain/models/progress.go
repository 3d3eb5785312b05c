package models

import "fmt"

// ProgressSummary aggregates a user's submission history. Averages are 0
// when the set is empty.
type ProgressSummary struct {
	TotalSubmissions   int64   `json:"total_submissions"`
	AverageQuality     float64 `json:"average_quality_score"`
	AverageAIInfluence float64 `json:"average_ai_influence"`
}

type SubmissionFilter string

const (
	FilterAll             SubmissionFilter = "all"
	FilterHighAIInfluence SubmissionFilter = "high-ai"
	FilterLowAIInfluence  SubmissionFilter = "low-ai"
	FilterHighQuality     SubmissionFilter = "high-score"
	FilterRevised         SubmissionFilter = "updated"
)

// ParseSubmissionFilter validates a filter string from the API. The empty
// string means no filtering.
func ParseSubmissionFilter(s string) (SubmissionFilter, error) {
	switch SubmissionFilter(s) {
	case FilterAll, FilterHighAIInfluence, FilterLowAIInfluence, FilterHighQuality, FilterRevised:
		return SubmissionFilter(s), nil
	case "":
		return FilterAll, nil
	default:
		return "", fmt.Errorf("invalid submission filter: %q", s)
	}
}
