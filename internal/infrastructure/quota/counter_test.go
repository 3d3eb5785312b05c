package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUsageKey(t *testing.T) {
	periodStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "usage:7:2024-03", usageKey(7, periodStart))

	// Different months never share a key, so counters reset implicitly.
	next := periodStart.AddDate(0, 1, 0)
	assert.NotEqual(t, usageKey(7, periodStart), usageKey(7, next))
}
