package analyticssrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/logx"
)

// AnalyticsService records careers page events and serves dashboard summaries
type AnalyticsService struct {
	counters    analytics.CounterStore
	repo        analytics.Repository
	companyRepo company.Repository
	now         func() time.Time
}

// NewAnalyticsService creates a new instance of the analytics service
func NewAnalyticsService(
	counters analytics.CounterStore,
	repo analytics.Repository,
	companyRepo company.Repository,
) *AnalyticsService {
	return &AnalyticsService{
		counters:    counters,
		repo:        repo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

var _ analytics.Recorder = (*AnalyticsService)(nil)

// ============================================================================
// Recording
// ============================================================================

// RecordPageView counts a careers page view by visitor
func (s *AnalyticsService) RecordPageView(ctx context.Context, companyID kernel.CompanyID, visitor string) error {
	if err := s.counters.IncrPageView(ctx, companyID, s.now(), visitor); err != nil {
		return analytics.ErrRecordFailed().WithCause(err)
	}
	return nil
}

// RecordJobView counts a job detail view
func (s *AnalyticsService) RecordJobView(ctx context.Context, companyID kernel.CompanyID, jobID kernel.JobID) error {
	if err := s.counters.IncrJobView(ctx, companyID, s.now(), jobID); err != nil {
		return analytics.ErrRecordFailed().WithCause(err)
	}
	return nil
}

// RecordApplicationClick counts a submitted application
func (s *AnalyticsService) RecordApplicationClick(ctx context.Context, companyID kernel.CompanyID, jobID kernel.JobID) error {
	if err := s.counters.IncrApplicationClick(ctx, companyID, s.now()); err != nil {
		return analytics.ErrRecordFailed().WithCause(err).WithDetail("job_id", jobID)
	}
	return nil
}

// ============================================================================
// Reporting
// ============================================================================

// GetSummary aggregates the last days of a company's analytics. Today's
// counters are read live so the dashboard does not wait for a flush.
func (s *AnalyticsService) GetSummary(ctx context.Context, companyID kernel.CompanyID, days int, userID kernel.UserID) (*analytics.Summary, error) {
	if days < 1 || days > analytics.MaxSummaryDays {
		return nil, analytics.ErrInvalidRange().
			WithDetail("days", days).
			WithDetail("max_days", analytics.MaxSummaryDays)
	}

	co, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get company", errx.TypeInternal)
	}
	if !co.IsOwnedBy(userID) {
		return nil, company.ErrNotOwner()
	}

	to := s.now()
	from := to.AddDate(0, 0, -(days - 1))

	stored, err := s.repo.ListByCompany(ctx, companyID, from, to)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list analytics", errx.TypeInternal)
	}

	live, err := s.counters.Snapshot(ctx, companyID, to)
	if err != nil {
		logx.Warnf("Failed to read live analytics for company %s: %v", companyID, err)
	} else {
		stored = mergeDay(stored, live)
	}

	summary := analytics.Summarize(companyID, from, to, stored)
	return &summary, nil
}

// ============================================================================
// Flushing
// ============================================================================

// Flush persists yesterday's and today's counters. Counters are absolute
// per day so repeated flushes are idempotent.
func (s *AnalyticsService) Flush(ctx context.Context) (int, error) {
	now := s.now()
	flushed := 0

	for _, day := range []time.Time{now.AddDate(0, 0, -1), now} {
		ids, err := s.counters.DirtyCompanies(ctx, day)
		if err != nil {
			return flushed, errx.Wrap(err, "failed to list dirty companies", errx.TypeExternal)
		}

		batch := make([]analytics.DailyStats, 0, len(ids))
		for _, id := range ids {
			stats, err := s.counters.Snapshot(ctx, id, day)
			if err != nil {
				logx.Errorf("Failed to snapshot analytics for company %s: %v", id, err)
				continue
			}
			if stats.IsEmpty() {
				continue
			}
			batch = append(batch, stats)
		}

		if err := s.repo.Upsert(ctx, batch); err != nil {
			return flushed, errx.Wrap(err, "failed to persist analytics", errx.TypeInternal)
		}
		flushed += len(batch)
	}

	return flushed, nil
}

// mergeDay replaces or appends the live bucket
func mergeDay(stored []analytics.DailyStats, live analytics.DailyStats) []analytics.DailyStats {
	if live.IsEmpty() {
		return stored
	}
	for i := range stored {
		if stored[i].Date == live.Date {
			stored[i] = live
			return stored
		}
	}
	return append(stored, live)
}
