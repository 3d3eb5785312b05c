package scorer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderScorerRanges(t *testing.T) {
	s := NewPlaceholderScorer(1)

	for i := 0; i < 200; i++ {
		analysis, err := s.Score(context.Background(), "some essay text")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, analysis.AIInfluence, 0.0)
		assert.LessOrEqual(t, analysis.AIInfluence, 70.0)
		assert.GreaterOrEqual(t, analysis.QualityScore, 7.0)
		assert.LessOrEqual(t, analysis.QualityScore, 10.0)
		assert.GreaterOrEqual(t, analysis.Readability.Score, 65.0)
		assert.LessOrEqual(t, analysis.Readability.Score, 90.0)
		assert.Equal(t, "Intermediate", analysis.Readability.Level)
		assert.NotEmpty(t, analysis.Suggestions)
		assert.NotEmpty(t, analysis.Strengths)
	}
}

func TestPlaceholderScorerDeterministicWithSeed(t *testing.T) {
	a, err := NewPlaceholderScorer(42).Score(context.Background(), "text")
	require.NoError(t, err)
	b, err := NewPlaceholderScorer(42).Score(context.Background(), "text")
	require.NoError(t, err)

	assert.Equal(t, a.AIInfluence, b.AIInfluence)
	assert.Equal(t, a.QualityScore, b.QualityScore)
	assert.Equal(t, a.Readability, b.Readability)
}

func TestPlaceholderScorerHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPlaceholderScorer(1).Score(ctx, "text")
	assert.Error(t, err)
}
