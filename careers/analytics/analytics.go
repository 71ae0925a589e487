package analytics

import (
	"sort"
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
)

// DateLayout is the day bucket format used for counters and rows
const DateLayout = "2006-01-02"

// MaxSummaryDays bounds the dashboard window
const MaxSummaryDays = 90

// DailyStats holds one company's careers page counters for one day
type DailyStats struct {
	CompanyID         kernel.CompanyID       `json:"company_id"`
	Date              string                 `json:"date"`
	PageViews         int64                  `json:"page_views"`
	UniqueVisitors    int64                  `json:"unique_visitors"`
	JobViews          map[kernel.JobID]int64 `json:"job_views"`
	ApplicationClicks int64                  `json:"application_clicks"`
}

// NewDailyStats creates an empty bucket for companyID on day
func NewDailyStats(companyID kernel.CompanyID, day time.Time) DailyStats {
	return DailyStats{
		CompanyID: companyID,
		Date:      Day(day),
		JobViews:  map[kernel.JobID]int64{},
	}
}

// Day formats t as its UTC day bucket
func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TotalJobViews sums the per-job views
func (d DailyStats) TotalJobViews() int64 {
	var total int64
	for _, v := range d.JobViews {
		total += v
	}
	return total
}

// IsEmpty reports whether nothing was recorded
func (d DailyStats) IsEmpty() bool {
	return d.PageViews == 0 && d.UniqueVisitors == 0 && d.ApplicationClicks == 0 && len(d.JobViews) == 0
}

// ============================================================================
// Summary
// ============================================================================

// JobViewCount is one job's views over the summary window
type JobViewCount struct {
	JobID kernel.JobID `json:"job_id"`
	Views int64        `json:"views"`
}

// Summary aggregates daily stats for the owner dashboard
type Summary struct {
	CompanyID         kernel.CompanyID `json:"company_id"`
	From              string           `json:"from"`
	To                string           `json:"to"`
	PageViews         int64            `json:"page_views"`
	UniqueVisitors    int64            `json:"unique_visitors"`
	JobViews          int64            `json:"job_views"`
	ApplicationClicks int64            `json:"application_clicks"`
	ConversionRate    float64          `json:"conversion_rate"`
	TopJobs           []JobViewCount   `json:"top_jobs"`
	Days              []DailyStats     `json:"days"`
}

// Summarize folds days into a summary. Unique visitors are summed per day.
// Days are returned in ascending date order.
func Summarize(companyID kernel.CompanyID, from, to time.Time, days []DailyStats) Summary {
	s := Summary{
		CompanyID: companyID,
		From:      Day(from),
		To:        Day(to),
		TopJobs:   []JobViewCount{},
		Days:      append([]DailyStats{}, days...),
	}

	perJob := map[kernel.JobID]int64{}
	for _, d := range days {
		s.PageViews += d.PageViews
		s.UniqueVisitors += d.UniqueVisitors
		s.ApplicationClicks += d.ApplicationClicks
		for id, v := range d.JobViews {
			perJob[id] += v
			s.JobViews += v
		}
	}

	if s.PageViews > 0 {
		s.ConversionRate = float64(s.ApplicationClicks) / float64(s.PageViews)
	}

	for id, v := range perJob {
		s.TopJobs = append(s.TopJobs, JobViewCount{JobID: id, Views: v})
	}
	sort.Slice(s.TopJobs, func(i, j int) bool {
		if s.TopJobs[i].Views != s.TopJobs[j].Views {
			return s.TopJobs[i].Views > s.TopJobs[j].Views
		}
		return s.TopJobs[i].JobID < s.TopJobs[j].JobID
	})

	sort.SliceStable(s.Days, func(i, j int) bool {
		return s.Days[i].Date < s.Days[j].Date
	})

	return s
}
