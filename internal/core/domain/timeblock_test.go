package domain_test

import (
	"testing"
	"time"

	"github.com/andriybobchuk/mooney/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTimeBlock_ActiveAccruesAgainstNow(t *testing.T) {
	start := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	now := start.Add(90 * time.Minute)
	b := domain.TimeBlock{TimeBlockID: "b1", JobID: "rivian", StartTime: start}

	assert.True(t, b.IsActive())
	assert.Equal(t, 90*time.Minute, b.Duration(now))
	assert.Equal(t, int64(90*60*1000), b.DurationMillis(now))
	assert.InDelta(t, 1.5, b.Hours(now), 1e-9)
}

func TestTimeBlock_ClosedIgnoresNow(t *testing.T) {
	start := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	b := domain.TimeBlock{TimeBlockID: "b1", StartTime: start, EndTime: &end}

	assert.False(t, b.IsActive())
	assert.Equal(t, 2*time.Hour, b.Duration(end.Add(24*time.Hour)))
}

func TestTimeBlock_FormattedDuration(t *testing.T) {
	start := time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC)
	b := domain.TimeBlock{StartTime: start}

	assert.Equal(t, "45m", b.FormattedDuration(start.Add(45*time.Minute)))
	assert.Equal(t, "3h", b.FormattedDuration(start.Add(3*time.Hour)))
	assert.Equal(t, "3h 20m", b.FormattedDuration(start.Add(3*time.Hour+20*time.Minute)))
}

func TestStatusUpdateID(t *testing.T) {
	date := time.Date(2026, time.January, 15, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "rivian_2026-01-15", domain.StatusUpdateID("rivian", date))
}
