package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	d2 := NewDailyStats("c", to)
	d2.PageViews = 4
	d2.UniqueVisitors = 2
	d2.JobViews["b"] = 2
	d2.JobViews["a"] = 2

	d1 := NewDailyStats("c", from)
	d1.PageViews = 6
	d1.UniqueVisitors = 3
	d1.ApplicationClicks = 2
	d1.JobViews["a"] = 1

	s := Summarize("c", from, to, []DailyStats{d2, d1})

	assert.Equal(t, int64(10), s.PageViews)
	assert.Equal(t, int64(5), s.UniqueVisitors)
	assert.Equal(t, int64(5), s.JobViews)
	assert.InDelta(t, 0.2, s.ConversionRate, 1e-9)
	assert.Equal(t, []JobViewCount{{"a", 3}, {"b", 2}}, s.TopJobs)
	assert.Equal(t, "2025-01-01", s.Days[0].Date)
}

func TestSummarize_Empty(t *testing.T) {
	now := time.Now()
	s := Summarize("c", now, now, nil)

	assert.Zero(t, s.ConversionRate)
	assert.Empty(t, s.TopJobs)
	assert.NotNil(t, s.Days)
}

func TestDailyStats(t *testing.T) {
	d := NewDailyStats("c", time.Date(2025, 1, 1, 23, 30, 0, 0, time.FixedZone("X", -3600)))

	assert.Equal(t, "2025-01-02", d.Date)
	assert.True(t, d.IsEmpty())

	d.JobViews["j"] = 2
	assert.False(t, d.IsEmpty())
	assert.Equal(t, int64(2), d.TotalJobViews())
}
