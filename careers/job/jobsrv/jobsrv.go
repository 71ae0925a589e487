package jobsrv

import (
	"context"
	"maps"

	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo     job.Repository
	companyRepo company.Repository
	pages       company.PageInvalidator
	sanitizer   *sanitize.Sanitizer
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	companyRepo company.Repository,
	pages company.PageInvalidator,
	sanitizer *sanitize.Sanitizer,
) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		pages:       pages,
		sanitizer:   sanitizer,
	}
}

// CreateJob creates a job posting under a company the user manages
func (s *JobService) CreateJob(ctx context.Context, companyID kernel.CompanyID, req job.CreateJobRequest, userID kernel.UserID) (*job.Job, error) {
	co, err := s.ownedCompany(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	draft := req.ToDraft().Sanitize(s.sanitizer)
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	newJob := job.NewJob(co.ID, draft)
	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	s.invalidatePage(ctx, co)
	logx.Infof("Created job %s for company %s", newJob.ID, co.ID)

	return newJob, nil
}

// GetJob retrieves a job the user manages
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID, userID kernel.UserID) (*job.Job, error) {
	existing, _, err := s.ownedJob(ctx, jobID, userID)
	return existing, err
}

// ListCompanyJobs lists a company's jobs for the dashboard
func (s *JobService) ListCompanyJobs(ctx context.Context, companyID kernel.CompanyID, userID kernel.UserID, opts job.ListOptions) (*job.PaginatedJobsResponse, error) {
	if _, err := s.ownedCompany(ctx, companyID, userID); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, companyID, opts)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list company jobs", errx.TypeInternal)
	}

	return kernel.MapPaginated(jobs, func(j job.Job) job.JobResponse {
		return j.ToResponse()
	}), nil
}

// UpdateJob saves the job form. Only changed attributes are written; an
// unchanged form never reaches the store.
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, current job.Draft, userID kernel.UserID) (*job.Job, error) {
	existing, co, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, existing, co, current)
}

// PatchJob applies a partial set of form values. Keys must be job
// attributes; values replace the current ones.
func (s *JobService) PatchJob(ctx context.Context, jobID kernel.JobID, values map[string]any, userID kernel.UserID) (*job.Job, error) {
	existing, co, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}

	original := existing.Draft().Values()
	merged := maps.Clone(original)
	maps.Copy(merged, values)

	current, err := job.DecodeDraft(merged)
	if err != nil {
		return nil, err
	}

	if changeset.Diff(original, merged).IsEmpty() {
		logx.Debugf("Patch for job %s changes nothing", existing.ID)
		return existing, nil
	}

	return s.save(ctx, existing, co, current)
}

// SetJobActive shows or hides a job on the public page
func (s *JobService) SetJobActive(ctx context.Context, jobID kernel.JobID, active bool, userID kernel.UserID) (*job.Job, error) {
	existing, co, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if existing.IsActive == active {
		return existing, nil
	}

	if err := s.jobRepo.Patch(ctx, existing.ID, changeset.ChangeSet{"is_active": active}); err != nil {
		return nil, errx.Wrap(err, "failed to update job status", errx.TypeInternal)
	}

	if active {
		existing.Activate()
	} else {
		existing.Deactivate()
	}

	s.invalidatePage(ctx, co)
	return existing, nil
}

// DeleteJob removes a job posting
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID, userID kernel.UserID) error {
	existing, co, err := s.ownedJob(ctx, jobID, userID)
	if err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, existing.ID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	s.invalidatePage(ctx, co)
	logx.Infof("Deleted job %s from company %s", existing.ID, co.ID)
	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *JobService) save(ctx context.Context, existing *job.Job, co *company.Company, current job.Draft) (*job.Job, error) {
	current = current.Sanitize(s.sanitizer)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	changes := job.Diff(existing.Draft(), current)
	if changes.IsEmpty() {
		logx.Debugf("No changes to save for job %s", existing.ID)
		return existing, nil
	}

	if err := s.jobRepo.Patch(ctx, existing.ID, changes.Columns()); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	changes.ApplyTo(existing)
	s.invalidatePage(ctx, co)

	return existing, nil
}

func (s *JobService) ownedCompany(ctx context.Context, companyID kernel.CompanyID, userID kernel.UserID) (*company.Company, error) {
	co, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load company", errx.TypeInternal)
	}
	if !co.IsOwnedBy(userID) {
		return nil, company.ErrNotOwner().WithDetail("company_id", companyID.String())
	}
	return co, nil
}

func (s *JobService) ownedJob(ctx context.Context, jobID kernel.JobID, userID kernel.UserID) (*job.Job, *company.Company, error) {
	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, errx.Wrap(err, "failed to load job", errx.TypeInternal)
	}

	co, err := s.companyRepo.GetByID(ctx, existing.CompanyID)
	if err != nil {
		return nil, nil, errx.Wrap(err, "failed to load company", errx.TypeInternal)
	}
	if !co.IsOwnedBy(userID) {
		return nil, nil, job.ErrNotOwner().WithDetail("job_id", jobID.String())
	}

	return existing, co, nil
}

func (s *JobService) invalidatePage(ctx context.Context, co *company.Company) {
	if err := s.pages.Invalidate(ctx, co.Slug); err != nil {
		logx.Warnf("Failed to invalidate careers page %s: %v", co.Slug, err)
	}
}
