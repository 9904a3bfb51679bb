package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderWindowTilesAcrossTicks(t *testing.T) {
	tick := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	lower, upper := reminderWindow(tick)
	assert.Equal(t, tick.Add(60*time.Minute), lower)
	assert.Equal(t, tick.Add(65*time.Minute), upper)

	// The next cron tick's window starts exactly where this one ends, so a
	// booking on the boundary belongs to one tick only.
	nextLower, _ := reminderWindow(tick.Add(5 * time.Minute))
	assert.Equal(t, upper, nextLower)
}

func boundaryInWindow(start, lower, upper time.Time) bool {
	return !start.Before(lower) && start.Before(upper)
}

func TestReminderWindowBoundaryPickedUpOnce(t *testing.T) {
	tick := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	start := tick.Add(65 * time.Minute)

	lower, upper := reminderWindow(tick)
	assert.False(t, boundaryInWindow(start, lower, upper), "upper bound is exclusive")

	nextLower, nextUpper := reminderWindow(tick.Add(5 * time.Minute))
	assert.True(t, boundaryInWindow(start, nextLower, nextUpper))
}
