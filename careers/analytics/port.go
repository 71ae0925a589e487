package analytics

import (
	"context"
	"time"

	"github.com/Abraxas-365/careers/pkg/kernel"
)

// Recorder records careers page events
type Recorder interface {
	RecordPageView(ctx context.Context, companyID kernel.CompanyID, visitor string) error
	RecordJobView(ctx context.Context, companyID kernel.CompanyID, jobID kernel.JobID) error
	RecordApplicationClick(ctx context.Context, companyID kernel.CompanyID, jobID kernel.JobID) error
}

// CounterStore keeps live per-day counters
type CounterStore interface {
	// IncrPageView counts a page view and adds visitor to the day's unique set
	IncrPageView(ctx context.Context, companyID kernel.CompanyID, day time.Time, visitor string) error

	// IncrJobView counts a job detail view
	IncrJobView(ctx context.Context, companyID kernel.CompanyID, day time.Time, jobID kernel.JobID) error

	// IncrApplicationClick counts a submitted application
	IncrApplicationClick(ctx context.Context, companyID kernel.CompanyID, day time.Time) error

	// DirtyCompanies lists companies with counters on day
	DirtyCompanies(ctx context.Context, day time.Time) ([]kernel.CompanyID, error)

	// Snapshot reads the current counters of a company for day
	Snapshot(ctx context.Context, companyID kernel.CompanyID, day time.Time) (DailyStats, error)
}

type Repository interface {
	// Upsert writes absolute daily counters keyed by (company_id, date)
	Upsert(ctx context.Context, stats []DailyStats) error

	// ListByCompany returns the stored days in [from, to]
	ListByCompany(ctx context.Context, companyID kernel.CompanyID, from, to time.Time) ([]DailyStats, error)
}
