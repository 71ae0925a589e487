package analyticsinfra

import (
	"testing"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterKeys(t *testing.T) {
	s := NewRedisCounterStore(nil, "")
	day := time.Date(2025, 3, 4, 23, 0, 0, 0, time.UTC)

	k := s.keys("c-1", day)

	assert.Equal(t, "analytics:2025-03-04:c-1:pv", k.pageViews)
	assert.Equal(t, "analytics:2025-03-04:c-1:uv", k.visitors)
	assert.Equal(t, "analytics:2025-03-04:c-1:jobs", k.jobViews)
	assert.Equal(t, "analytics:2025-03-04:c-1:apply", k.applications)
	assert.Equal(t, "analytics:2025-03-04:dirty", s.dirtyKey(day))
}

func TestVisitorDigest(t *testing.T) {
	a := visitorDigest("user:u-1")

	assert.Len(t, a, 32)
	assert.Equal(t, a, visitorDigest("user:u-1"))
	assert.NotEqual(t, a, visitorDigest("user:u-2"))
	assert.NotContains(t, a, "u-1")
}

func TestDailyStatsModelRoundTrip(t *testing.T) {
	stats := analytics.NewDailyStats("c-1", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))
	stats.PageViews = 10
	stats.UniqueVisitors = 4
	stats.ApplicationClicks = 1
	stats.JobViews[kernel.JobID("j-1")] = 3

	model, err := fromEntity(stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"j-1":3}`, string(model.JobViews))

	back, err := model.toEntity()
	require.NoError(t, err)
	assert.Equal(t, stats, back)
}

func TestFromEntityRejectsBadDate(t *testing.T) {
	_, err := fromEntity(analytics.DailyStats{CompanyID: "c-1", Date: "yesterday"})
	assert.Error(t, err)
}
