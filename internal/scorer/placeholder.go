package scorer

import (
	"context"
	"math/rand"
	"sync"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// PlaceholderScorer generates demo results in the same ranges the
// original product shipped with. It stands in for a real model; only its
// interface is a contract.
type PlaceholderScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewPlaceholderScorer(seed int64) *PlaceholderScorer {
	return &PlaceholderScorer{rng: rand.New(rand.NewSource(seed))}
}

var placeholderSuggestions = []models.Suggestion{
	{Text: "Try varying your sentence structures more", Category: "style"},
	{Text: "Consider adding more personal perspectives", Category: "voice"},
	{Text: "Use more specific examples to illustrate your points", Category: "clarity"},
	{Text: "Add some transitional phrases between paragraphs", Category: "structure"},
}

var placeholderStrengths = []models.Strength{
	{Text: "Good vocabulary usage", Category: "voice"},
	{Text: "Clear organization of ideas", Category: "clarity"},
	{Text: "Effective use of examples", Category: "style"},
}

func (s *PlaceholderScorer) Score(ctx context.Context, text string) (*models.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	aiInfluence := float64(s.rng.Intn(71))      // 0-70%
	quality := 7 + s.rng.Float64()*3            // 7-10
	readability := float64(65 + s.rng.Intn(26)) // 65-90
	s.mu.Unlock()

	return &models.Analysis{
		AIInfluence:  aiInfluence,
		QualityScore: quality,
		Readability: models.Readability{
			Score: readability,
			Level: "Intermediate",
		},
		Suggestions: append([]models.Suggestion(nil), placeholderSuggestions...),
		Strengths:   append([]models.Strength(nil), placeholderStrengths...),
	}, nil
}

func (s *PlaceholderScorer) GetName() string {
	return "Placeholder"
}
