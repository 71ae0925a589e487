package careerspagesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/careers/careerspage"
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/logx"
)

// PageService serves public careers pages
type PageService struct {
	companyRepo company.Repository
	jobRepo     job.Repository
	cache       careerspage.PageCache
	recorder    analytics.Recorder
	now         func() time.Time
}

// NewPageService creates a new instance of the careers page service
func NewPageService(
	companyRepo company.Repository,
	jobRepo job.Repository,
	cache careerspage.PageCache,
	recorder analytics.Recorder,
) *PageService {
	return &PageService{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		cache:       cache,
		recorder:    recorder,
		now:         time.Now,
	}
}

// ============================================================================
// Public Pages
// ============================================================================

// GetPage renders the published careers page of slug filtered by criteria
// and counts a page view for visitor
func (s *PageService) GetPage(ctx context.Context, slug string, criteria job.Criteria, visitor string) (*careerspage.Page, error) {
	snap, err := s.snapshot(ctx, slug)
	if err != nil {
		return nil, err
	}

	page := careerspage.NewPage(snap, criteria, careerspage.ModeLive)

	if err := s.recorder.RecordPageView(ctx, snap.Company.ID, visitor); err != nil {
		logx.Warnf("Failed to record page view for %s: %v", slug, err)
	}

	return page, nil
}

// GetJob returns an active job of a published careers page and counts a job view
func (s *PageService) GetJob(ctx context.Context, slug string, jobID kernel.JobID) (*careerspage.JobDetail, error) {
	snap, err := s.snapshot(ctx, slug)
	if err != nil {
		return nil, err
	}

	found, ok := snap.FindJob(jobID)
	if !ok {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID)
	}

	if err := s.recorder.RecordJobView(ctx, snap.Company.ID, jobID); err != nil {
		logx.Warnf("Failed to record job view for %s: %v", jobID, err)
	}

	return &careerspage.JobDetail{
		Company: careerspage.Public(&snap.Company),
		Job:     found.ToResponse(),
	}, nil
}

// ============================================================================
// Preview & Demo
// ============================================================================

// Preview renders a company's page for its owner whether or not it is
// published. Inactive jobs are included. Nothing is cached or counted.
func (s *PageService) Preview(ctx context.Context, slug string, criteria job.Criteria, userID kernel.UserID) (*careerspage.Page, error) {
	co, err := s.companyRepo.GetBySlug(ctx, careerspage.NormalizeSlug(slug))
	if err != nil {
		return nil, errx.Wrap(err, "failed to get company", errx.TypeInternal)
	}
	if !co.IsOwnedBy(userID) {
		return nil, company.ErrNotOwner()
	}

	jobs, err := s.jobRepo.ListAllByCompany(ctx, co.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	snap := &careerspage.Snapshot{Company: *co, Jobs: jobs, CachedAt: s.now()}
	return careerspage.NewPage(snap, criteria, careerspage.ModePreview), nil
}

// Demo renders the published page of slug when it exists and sample data
// otherwise. Nothing is counted.
func (s *PageService) Demo(ctx context.Context, slug string, criteria job.Criteria) (*careerspage.Page, error) {
	slug = careerspage.NormalizeSlug(slug)

	snap, err := s.snapshot(ctx, slug)
	if err != nil {
		if !errx.IsType(err, errx.TypeNotFound) {
			return nil, err
		}
		snap = careerspage.DemoSnapshot(slug, s.now())
	}

	return careerspage.NewPage(snap, criteria, careerspage.ModeDemo), nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// snapshot loads the published company and its active jobs, through the cache
func (s *PageService) snapshot(ctx context.Context, slug string) (*careerspage.Snapshot, error) {
	slug = careerspage.NormalizeSlug(slug)
	if slug == "" {
		return nil, company.ErrCompanyNotFound()
	}

	if snap, ok, err := s.cache.Get(ctx, slug); err != nil {
		logx.Warnf("Page cache read failed for %s: %v", slug, err)
	} else if ok {
		return snap, nil
	}

	co, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get company", errx.TypeInternal)
	}
	if !co.IsPublished {
		return nil, company.ErrNotPublished().WithDetail("slug", slug)
	}

	jobs, err := s.jobRepo.ListActiveByCompany(ctx, co.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list active jobs", errx.TypeInternal)
	}

	snap := &careerspage.Snapshot{Company: *co, Jobs: jobs, CachedAt: s.now()}
	if err := s.cache.Set(ctx, slug, snap); err != nil {
		logx.Warnf("Page cache write failed for %s: %v", slug, err)
	}

	return snap, nil
}
