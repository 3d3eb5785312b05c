package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/repositories"
)

// UsageService recomputes a user's billing-period usage from the
// submission store on every query. Nothing is cached, so the result can
// never drift from the store.
type UsageService interface {
	UsageFor(ctx context.Context, ownerID int64, asOf time.Time) (*models.UsageState, error)
}

type usageService struct {
	subRepo repositories.SubmissionRepository
	logger  *slog.Logger
}

func NewUsageService(subRepo repositories.SubmissionRepository, logger *slog.Logger) UsageService {
	return &usageService{
		subRepo: subRepo,
		logger:  logger,
	}
}

func (s *usageService) UsageFor(ctx context.Context, ownerID int64, asOf time.Time) (*models.UsageState, error) {
	periodStart := models.PeriodStart(asOf)

	count, err := s.subRepo.CountByOwnerSince(ctx, ownerID, periodStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions for user %d: %w", ownerID, err)
	}

	tier := models.DeriveTier(count)
	limit := models.TierLimit(tier)

	remaining := models.QuotaUnlimited
	display := models.QuotaUnlimited
	if limit != models.QuotaUnlimited {
		// The gate needs the unfloored value; the display copy is
		// floored at zero.
		remaining = limit - count
		display = remaining
		if display < 0 {
			display = 0
		}
	}

	s.logger.Debug("usage computed",
		"owner_id", ownerID,
		"period_start", periodStart,
		"count", count,
		"tier", tier,
	)

	return &models.UsageState{
		OwnerID:               ownerID,
		PeriodStart:           periodStart,
		SubmissionsInPeriod:   count,
		Tier:                  tier,
		QuotaRemaining:        remaining,
		QuotaRemainingDisplay: display,
	}, nil
}
