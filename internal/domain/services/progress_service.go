package services

import (
	"context"
	"fmt"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/repositories"
)

// ProgressService folds a user's submission history into summary
// statistics and filtered views. Every call recomputes from the current
// store snapshot; there is no cached state to invalidate.
type ProgressService interface {
	Summarize(ctx context.Context, ownerID int64) (*models.ProgressSummary, error)
	History(ctx context.Context, ownerID int64, filter models.SubmissionFilter) ([]*models.Submission, error)
}

type progressService struct {
	subRepo repositories.SubmissionRepository
}

func NewProgressService(subRepo repositories.SubmissionRepository) ProgressService {
	return &progressService{subRepo: subRepo}
}

func (s *progressService) Summarize(ctx context.Context, ownerID int64) (*models.ProgressSummary, error) {
	subs, err := s.subRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for user %d: %w", ownerID, err)
	}

	summary := &models.ProgressSummary{TotalSubmissions: int64(len(subs))}
	if len(subs) == 0 {
		return summary, nil
	}

	var totalQuality, totalInfluence float64
	for _, sub := range subs {
		totalQuality += sub.Analysis.QualityScore
		totalInfluence += sub.Analysis.AIInfluence
	}

	summary.AverageQuality = totalQuality / float64(len(subs))
	summary.AverageAIInfluence = totalInfluence / float64(len(subs))
	return summary, nil
}

func (s *progressService) History(ctx context.Context, ownerID int64, filter models.SubmissionFilter) ([]*models.Submission, error) {
	subs, err := s.subRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for user %d: %w", ownerID, err)
	}
	return FilterSubmissions(subs, filter), nil
}

// FilterSubmissions selects a display subset without mutating the input.
// Order is preserved.
func FilterSubmissions(subs []*models.Submission, filter models.SubmissionFilter) []*models.Submission {
	if filter == models.FilterAll || filter == "" {
		return subs
	}

	filtered := make([]*models.Submission, 0, len(subs))
	for _, sub := range subs {
		switch filter {
		case models.FilterHighAIInfluence:
			if sub.Analysis.AIInfluence > 50 {
				filtered = append(filtered, sub)
			}
		case models.FilterLowAIInfluence:
			if sub.Analysis.AIInfluence <= 20 {
				filtered = append(filtered, sub)
			}
		case models.FilterHighQuality:
			if sub.Analysis.QualityScore >= 8 {
				filtered = append(filtered, sub)
			}
		case models.FilterRevised:
			if sub.UpdatedAt != nil {
				filtered = append(filtered, sub)
			}
		}
	}
	return filtered
}
