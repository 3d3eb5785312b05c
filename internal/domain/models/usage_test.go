package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveTier(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  PlanTier
	}{
		{"zero submissions", 0, TierFree},
		{"under free limit", 19, TierFree},
		{"at free limit", 20, TierFree},
		{"just over free limit", 21, TierStandard},
		{"mid standard", 35, TierStandard},
		{"at standard limit", 50, TierStandard},
		{"just over standard limit", 51, TierPremium},
		{"heavy user", 500, TierPremium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTier(tt.count))
		})
	}
}

func TestDeriveTierMonotonic(t *testing.T) {
	rank := map[PlanTier]int{TierFree: 0, TierStandard: 1, TierPremium: 2}

	prev := DeriveTier(0)
	for count := int64(1); count <= 120; count++ {
		cur := DeriveTier(count)
		assert.GreaterOrEqual(t, rank[cur], rank[prev], "tier decreased at count %d", count)
		prev = cur
	}
}

func TestTierLimit(t *testing.T) {
	assert.Equal(t, int64(20), TierLimit(TierFree))
	assert.Equal(t, int64(50), TierLimit(TierStandard))
	assert.Equal(t, QuotaUnlimited, TierLimit(TierPremium))
}

func TestPeriodStart(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	tests := []struct {
		name string
		asOf time.Time
		want time.Time
	}{
		{
			"mid month",
			time.Date(2024, time.March, 17, 14, 30, 5, 0, time.UTC),
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"first instant of month",
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"keeps location",
			time.Date(2024, time.December, 31, 23, 59, 59, 0, loc),
			time.Date(2024, time.December, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(PeriodStart(tt.asOf)))
		})
	}
}
