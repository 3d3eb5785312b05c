package models

import "time"

type PlanTier string

const (
	TierFree     PlanTier = "free"
	TierStandard PlanTier = "standard"
	TierPremium  PlanTier = "premium"
)

// QuotaUnlimited is the sentinel limit for the premium tier.
const QuotaUnlimited int64 = -1

const (
	FreeTierLimit     int64 = 20
	StandardTierLimit int64 = 50
)

// UsageState is derived from the submission store at query time. It is
// never persisted, so it cannot drift out of sync with the store.
type UsageState struct {
	OwnerID               int64     `json:"owner_id"`
	PeriodStart           time.Time `json:"period_start"`
	SubmissionsInPeriod   int64     `json:"submission_count"`
	Tier                  PlanTier  `json:"tier"`
	QuotaRemaining        int64     `json:"quota_remaining"`
	QuotaRemainingDisplay int64     `json:"quota_remaining_display"`
}

// DeriveTier maps a billing-period submission count onto the plan ladder.
// The ladder is evaluated on usage before the candidate submission, so a
// heavy user is auto-upgraded by volume.
func DeriveTier(count int64) PlanTier {
	switch {
	case count > StandardTierLimit:
		return TierPremium
	case count > FreeTierLimit:
		return TierStandard
	default:
		return TierFree
	}
}

// TierLimit returns the per-period submission limit for a tier, or
// QuotaUnlimited for premium.
func TierLimit(tier PlanTier) int64 {
	switch tier {
	case TierPremium:
		return QuotaUnlimited
	case TierStandard:
		return StandardTierLimit
	default:
		return FreeTierLimit
	}
}

// PeriodStart returns the first instant of asOf's calendar month in
// asOf's location. Usage counts reset on this boundary.
func PeriodStart(asOf time.Time) time.Time {
	return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
}

// Unlimited reports whether the state's tier has no submission cap.
func (u *UsageState) Unlimited() bool {
	return u.Tier == TierPremium
}
