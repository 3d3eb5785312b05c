package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/EugeniaBD/AIWriteCheck/internal/domain/models"
)

// SubmissionGate is the admission-control decision point evaluated before
// the scorer is ever invoked.
type SubmissionGate struct {
	minTextLength int
}

func NewSubmissionGate(minTextLength int) *SubmissionGate {
	return &SubmissionGate{minTextLength: minTextLength}
}

func (g *SubmissionGate) MinTextLength() int {
	return g.minTextLength
}

// CheckText rejects input below the minimum length. It runs before any
// usage accounting, so a short text never touches the quota.
func (g *SubmissionGate) CheckText(text string) error {
	if utf8.RuneCountInString(text) < g.minTextLength {
		return fmt.Errorf("%w: need at least %d characters", models.ErrTextTooShort, g.minTextLength)
	}
	return nil
}

// Admit decides allow or deny against the usage state observed at the
// start of the request. Without the exact counter mode, two concurrent
// submits near the boundary may both be admitted; the overshoot is
// bounded at one submission.
func (g *SubmissionGate) Admit(usage *models.UsageState) error {
	if usage.Unlimited() {
		return nil
	}
	if usage.SubmissionsInPeriod >= models.TierLimit(usage.Tier) {
		return fmt.Errorf("%w: %d of %d used on %s tier",
			models.ErrQuotaExhausted, usage.SubmissionsInPeriod, models.TierLimit(usage.Tier), usage.Tier)
	}
	return nil
}
