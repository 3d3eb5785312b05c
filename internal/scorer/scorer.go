package scorer

import (
	"context"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// Scorer produces the quality and AI-influence analysis for a piece of
// text. Implementations must not retain the text after returning.
type Scorer interface {
	Score(ctx context.Context, text string) (*models.Analysis, error)
	GetName() string
}
