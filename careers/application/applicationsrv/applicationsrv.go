package applicationsrv

import (
	"context"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/careers/application"
	"github.com/Abraxas-365/careers/careers/careerspage"
	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/fsx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/Abraxas-365/careers/pkg/validatex"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	companyRepo     company.Repository
	fileSystem      fsx.FileSystem
	recorder        analytics.Recorder
	sanitizer       *sanitize.Sanitizer
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	companyRepo company.Repository,
	fileSystem fsx.FileSystem,
	recorder analytics.Recorder,
	sanitizer *sanitize.Sanitizer,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
		fileSystem:      fileSystem,
		recorder:        recorder,
		sanitizer:       sanitizer,
	}
}

// Apply submits a candidate's application to an active job on a published
// careers page. The resume is optional.
func (s *ApplicationService) Apply(ctx context.Context, slug string, jobID kernel.JobID, req application.ApplyRequest, resume *application.Resume) (*application.Application, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	jobEntity, co, err := s.openJob(ctx, slug, jobID)
	if err != nil {
		return nil, err
	}

	req.CandidateName = s.sanitizer.Plain(req.CandidateName)
	req.CoverLetter = s.sanitizer.Plain(req.CoverLetter)
	app := application.NewApplication(jobEntity.ID, co.ID, req)

	exists, err := s.applicationRepo.ExistsByJobAndEmail(ctx, jobEntity.ID, app.CandidateEmail)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("job_id", jobEntity.ID.String())
	}

	var storagePath string
	if resume != nil {
		ext, err := application.ValidateResume(resume.ContentType, resume.Size)
		if err != nil {
			return nil, err
		}

		storagePath = application.ResumePath(app, ext)
		if err := s.fileSystem.WriteFileStream(ctx, storagePath, resume.Body); err != nil {
			return nil, errx.Wrap(err, "failed to upload resume", errx.TypeExternal)
		}
		app.ResumeURL = s.fileSystem.URL(storagePath)
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if storagePath != "" {
			if delErr := s.fileSystem.DeleteFile(context.WithoutCancel(ctx), storagePath); delErr != nil {
				logx.Warnf("Failed to clean up resume %s: %v", storagePath, delErr)
			}
		}
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	if err := s.recorder.RecordApplicationClick(ctx, co.ID, jobEntity.ID); err != nil {
		logx.Warnf("Failed to record application for job %s: %v", jobEntity.ID, err)
	}

	logx.Infof("New application %s for job %s", app.ID, jobEntity.ID)
	return app, nil
}

// ListByJob lists a job's applications for the company owner
func (s *ApplicationService) ListByJob(ctx context.Context, jobID kernel.JobID, opts application.ListOptions, userID kernel.UserID) (*application.PaginatedApplicationsResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get job", errx.TypeInternal)
	}
	if err := s.checkOwner(ctx, jobEntity.CompanyID, userID); err != nil {
		return nil, err
	}

	if opts.Status != "" && !opts.Status.IsValid() {
		return nil, application.ErrInvalidStatus().WithDetail("status", opts.Status)
	}
	opts.Pagination = opts.Pagination.Normalize()

	apps, err := s.applicationRepo.ListByJob(ctx, jobID, opts)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return apps, nil
}

// GetApplication retrieves an application for the company owner
func (s *ApplicationService) GetApplication(ctx context.Context, id kernel.ApplicationID, userID kernel.UserID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get application", errx.TypeInternal)
	}
	if err := s.checkOwner(ctx, app.CompanyID, userID); err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateStatus moves an application through review
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.Status, userID kernel.UserID) (*application.Application, error) {
	app, err := s.GetApplication(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := app.UpdateStatus(status); err != nil {
		return nil, err
	}

	changes := changeset.ChangeSet{
		"status":            string(app.Status),
		"status_changed_at": *app.StatusChangedAt,
	}
	if err := s.applicationRepo.Patch(ctx, app.ID, changes); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	return app, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// openJob loads a job accepting applications on the careers page of slug
func (s *ApplicationService) openJob(ctx context.Context, slug string, jobID kernel.JobID) (*job.Job, *company.Company, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, errx.Wrap(err, "failed to get job", errx.TypeInternal)
	}

	co, err := s.companyRepo.GetByID(ctx, jobEntity.CompanyID)
	if err != nil {
		return nil, nil, errx.Wrap(err, "failed to get company", errx.TypeInternal)
	}
	if co.Slug != careerspage.NormalizeSlug(slug) {
		return nil, nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}
	if !co.IsPublished {
		return nil, nil, company.ErrNotPublished().WithDetail("slug", co.Slug)
	}
	if !jobEntity.IsActive {
		return nil, nil, application.ErrJobNotOpen().WithDetail("job_id", jobID.String())
	}

	return jobEntity, co, nil
}

func (s *ApplicationService) checkOwner(ctx context.Context, companyID kernel.CompanyID, userID kernel.UserID) error {
	co, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return errx.Wrap(err, "failed to get company", errx.TypeInternal)
	}
	if !co.IsOwnedBy(userID) {
		return company.ErrNotOwner()
	}
	return nil
}
