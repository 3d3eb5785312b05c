package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// fakeSubmissionRepo is an in-memory SubmissionRepository for service
// tests. ListByOwner returns newest first, like the real store.
type fakeSubmissionRepo struct {
	subs       []*models.Submission
	createErr  error
	countErr   error
	listErr    error
	countCalls int
}

func (r *fakeSubmissionRepo) Create(_ context.Context, sub *models.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	copied := *sub
	r.subs = append(r.subs, &copied)
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id string, ownerID int64) (*models.Submission, error) {
	for _, sub := range r.subs {
		if sub.ID == id {
			if sub.OwnerID != ownerID {
				return nil, models.ErrForbidden
			}
			copied := *sub
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeSubmissionRepo) ListByOwner(_ context.Context, ownerID int64) ([]*models.Submission, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.Submission
	for i := len(r.subs) - 1; i >= 0; i-- {
		if r.subs[i].OwnerID == ownerID {
			copied := *r.subs[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) CountByOwnerSince(_ context.Context, ownerID int64, since time.Time) (int64, error) {
	r.countCalls++
	if r.countErr != nil {
		return 0, r.countErr
	}
	var count int64
	for _, sub := range r.subs {
		if sub.OwnerID == ownerID && !sub.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *fakeSubmissionRepo) Revise(ctx context.Context, id string, ownerID int64, patch *models.AnalysisPatch) (*models.Submission, error) {
	for _, sub := range r.subs {
		if sub.ID != id {
			continue
		}
		if sub.OwnerID != ownerID {
			return nil, models.ErrForbidden
		}
		if patch.AIInfluence != nil {
			sub.Analysis.AIInfluence = *patch.AIInfluence
		}
		if patch.QualityScore != nil {
			sub.Analysis.QualityScore = *patch.QualityScore
		}
		if patch.Readability != nil {
			sub.Analysis.Readability = *patch.Readability
		}
		if patch.Suggestions != nil {
			sub.Analysis.Suggestions = patch.Suggestions
		}
		if patch.Strengths != nil {
			sub.Analysis.Strengths = patch.Strengths
		}
		now := time.Now()
		sub.UpdatedAt = &now
		copied := *sub
		return &copied, nil
	}
	return nil, models.ErrNotFound
}

// seedSubmissions inserts n completed submissions for ownerID, all
// created at the given time.
func (r *fakeSubmissionRepo) seedSubmissions(ownerID int64, n int, createdAt time.Time) {
	for i := 0; i < n; i++ {
		r.subs = append(r.subs, &models.Submission{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Title:     fmt.Sprintf("Essay %d", i+1),
			Text:      "seeded",
			CreatedAt: createdAt,
		})
	}
}

type fakeScorer struct {
	analysis *models.Analysis
	err      error
	calls    int
}

func (s *fakeScorer) Score(_ context.Context, _ string) (*models.Analysis, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.analysis, nil
}

func (s *fakeScorer) GetName() string { return "fake" }

type fakeCounter struct {
	allow        bool
	reserveErr   error
	reserves     int
	releases     int
	lastLimit    int64
	lastObserved int64
}

func (c *fakeCounter) Reserve(_ context.Context, _ int64, _ time.Time, limit, observed int64) (bool, error) {
	c.reserves++
	c.lastLimit = limit
	c.lastObserved = observed
	if c.reserveErr != nil {
		return false, c.reserveErr
	}
	return c.allow, nil
}

func (c *fakeCounter) Release(_ context.Context, _ int64, _ time.Time) error {
	c.releases++
	return nil
}
