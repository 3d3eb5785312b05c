package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
	"github.com/EugeniaBD/AIWriteCheck/internal/domain/repositories"
	"github.com/EugeniaBD/AIWriteCheck/internal/metrics"
	"github.com/EugeniaBD/AIWriteCheck/internal/scorer"
)

// AnalysisService coordinates gate check, scorer call and persistence for
// a submission. The store write is the single commit point: every failure
// before it leaves no partial state, so callers may retry the whole call.
type AnalysisService interface {
	Submit(ctx context.Context, req *SubmitRequest) (*models.Submission, error)
	GetSubmission(ctx context.Context, id string, ownerID int64) (*models.Submission, error)
	Revise(ctx context.Context, id string, ownerID int64, patch *models.AnalysisPatch) (*models.Submission, error)
}

type SubmitRequest struct {
	OwnerID int64  `json:"owner_id"`
	Title   string `json:"title"`
	Text    string `json:"text" validate:"required"`
}

// UsageCounter reserves a submission slot atomically for the exact
// enforcement mode. A nil counter leaves the gate advisory.
type UsageCounter interface {
	Reserve(ctx context.Context, ownerID int64, periodStart time.Time, limit, observed int64) (bool, error)
	Release(ctx context.Context, ownerID int64, periodStart time.Time) error
}

type analysisService struct {
	subRepo       repositories.SubmissionRepository
	usage         UsageService
	gate          *SubmissionGate
	scorer        scorer.Scorer
	counter       UsageCounter
	scorerTimeout time.Duration
	recorder      metrics.Recorder
	logger        *slog.Logger
	now           func() time.Time
}

func NewAnalysisService(
	subRepo repositories.SubmissionRepository,
	usage UsageService,
	gate *SubmissionGate,
	sc scorer.Scorer,
	counter UsageCounter,
	scorerTimeout time.Duration,
	recorder metrics.Recorder,
	logger *slog.Logger,
) AnalysisService {
	return &analysisService{
		subRepo:       subRepo,
		usage:         usage,
		gate:          gate,
		scorer:        sc,
		counter:       counter,
		scorerTimeout: scorerTimeout,
		recorder:      recorder,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *analysisService) Submit(ctx context.Context, req *SubmitRequest) (*models.Submission, error) {
	title := req.Title
	if title == "" {
		title = models.DefaultTitle
	}

	// Validating
	if err := s.gate.CheckText(req.Text); err != nil {
		s.recorder.RecordGateDenial("text_too_short")
		s.recorder.RecordSubmission(metrics.OutcomeRejected)
		return nil, err
	}

	// CheckingQuota
	usage, err := s.usage.UsageFor(ctx, req.OwnerID, s.now())
	if err != nil {
		s.recorder.RecordSubmission(metrics.OutcomeFailed)
		return nil, fmt.Errorf("failed to compute usage: %w", err)
	}

	if err := s.gate.Admit(usage); err != nil {
		s.logger.Info("submission denied",
			"owner_id", req.OwnerID,
			"tier", usage.Tier,
			"count", usage.SubmissionsInPeriod,
		)
		s.recorder.RecordGateDenial("quota_exhausted")
		s.recorder.RecordSubmission(metrics.OutcomeRejected)
		return nil, err
	}

	reserved := false
	if s.counter != nil && !usage.Unlimited() {
		ok, err := s.counter.Reserve(ctx, req.OwnerID, usage.PeriodStart, models.TierLimit(usage.Tier), usage.SubmissionsInPeriod)
		if err != nil {
			s.recorder.RecordSubmission(metrics.OutcomeFailed)
			return nil, fmt.Errorf("quota reservation failed: %w", err)
		}
		if !ok {
			s.recorder.RecordGateDenial("quota_exhausted")
			s.recorder.RecordSubmission(metrics.OutcomeRejected)
			return nil, fmt.Errorf("%w: concurrent submissions used the last slot", models.ErrQuotaExhausted)
		}
		reserved = true
	}

	// Scoring
	scoreCtx, cancel := context.WithTimeout(ctx, s.scorerTimeout)
	defer cancel()

	scoreStart := s.now()
	analysis, err := s.scorer.Score(scoreCtx, req.Text)
	s.recorder.RecordScorerLatency(s.scorer.GetName(), time.Since(scoreStart))
	if err != nil {
		s.releaseReservation(ctx, reserved, req.OwnerID, usage.PeriodStart)
		s.logger.Error("scorer call failed", "owner_id", req.OwnerID, "error", err)
		s.recorder.RecordSubmission(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %v", models.ErrScoringFailed, err)
	}

	// Persisting
	sub := &models.Submission{
		OwnerID:  req.OwnerID,
		Title:    title,
		Text:     req.Text,
		Analysis: *analysis,
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		s.releaseReservation(ctx, reserved, req.OwnerID, usage.PeriodStart)
		s.logger.Error("failed to persist submission", "owner_id", req.OwnerID, "error", err)
		s.recorder.RecordSubmission(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %v", models.ErrPersistenceFailed, err)
	}

	s.logger.Info("submission completed",
		"submission_id", sub.ID,
		"owner_id", req.OwnerID,
		"tier", usage.Tier,
	)
	s.recorder.RecordSubmission(metrics.OutcomeCompleted)

	return sub, nil
}

func (s *analysisService) GetSubmission(ctx context.Context, id string, ownerID int64) (*models.Submission, error) {
	return s.subRepo.GetByID(ctx, id, ownerID)
}

func (s *analysisService) Revise(ctx context.Context, id string, ownerID int64, patch *models.AnalysisPatch) (*models.Submission, error) {
	sub, err := s.subRepo.Revise(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("submission revised", "submission_id", id, "owner_id", ownerID)
	return sub, nil
}

func (s *analysisService) releaseReservation(ctx context.Context, reserved bool, ownerID int64, periodStart time.Time) {
	if !reserved {
		return
	}
	if err := s.counter.Release(ctx, ownerID, periodStart); err != nil {
		s.logger.Error("failed to release quota reservation", "owner_id", ownerID, "error", err)
	}
}
