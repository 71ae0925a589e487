package companysrv

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/errx"
	"github.com/Abraxas-365/careers/pkg/fsx"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	"github.com/Abraxas-365/careers/pkg/validatex"
	"github.com/google/uuid"
)

// CompanyService provides business operations for companies and their pages
type CompanyService struct {
	companyRepo company.Repository
	jobRepo     job.Repository
	pages       company.PageInvalidator
	fileSystem  fsx.FileSystem
	sanitizer   *sanitize.Sanitizer
}

// NewCompanyService creates a new instance of the company service
func NewCompanyService(
	companyRepo company.Repository,
	jobRepo job.Repository,
	pages company.PageInvalidator,
	fileSystem fsx.FileSystem,
	sanitizer *sanitize.Sanitizer,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		pages:       pages,
		fileSystem:  fileSystem,
		sanitizer:   sanitizer,
	}
}

// CreateCompany creates a company with a unique page slug
func (s *CompanyService) CreateCompany(ctx context.Context, req company.CreateCompanyRequest, userID kernel.UserID) (*company.Company, error) {
	if userID.IsEmpty() {
		return nil, company.ErrNotOwner()
	}
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	name := s.sanitizer.Plain(req.Name)
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = company.Slugify(name)
	}
	if err := company.ValidateSlug(slug); err != nil {
		return nil, err
	}

	exists, err := s.companyRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check slug", errx.TypeInternal)
	}
	if exists {
		return nil, company.ErrSlugTaken().WithDetail("slug", slug)
	}

	co := company.NewCompany(
		userID,
		name,
		slug,
		s.sanitizer.Plain(req.Tagline),
		s.sanitizer.Rich(req.Description),
	)

	if err := s.companyRepo.Create(ctx, co); err != nil {
		return nil, errx.Wrap(err, "failed to create company", errx.TypeInternal)
	}

	logx.Infof("Created company %s (%s) for user %s", co.ID, co.Slug, userID)
	return co, nil
}

// GetCompany retrieves a company the user manages
func (s *CompanyService) GetCompany(ctx context.Context, id kernel.CompanyID, userID kernel.UserID) (*company.Company, error) {
	co, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load company", errx.TypeInternal)
	}
	return checkOwner(co, userID)
}

// GetCompanyBySlug retrieves a company the user manages by its slug
func (s *CompanyService) GetCompanyBySlug(ctx context.Context, slug string, userID kernel.UserID) (*company.Company, error) {
	co, err := s.companyRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load company", errx.TypeInternal)
	}
	return checkOwner(co, userID)
}

// ListDashboard lists the user's companies with their job counts
func (s *CompanyService) ListDashboard(ctx context.Context, userID kernel.UserID) ([]company.DashboardItem, error) {
	companies, err := s.companyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list companies", errx.TypeInternal)
	}

	items := make([]company.DashboardItem, 0, len(companies))
	for _, co := range companies {
		total, active, err := s.jobRepo.CountByCompany(ctx, co.ID)
		if err != nil {
			return nil, errx.Wrap(err, "failed to count jobs", errx.TypeInternal)
		}
		items = append(items, company.DashboardItem{
			Company:        co,
			JobCount:       total,
			ActiveJobCount: active,
		})
	}

	return items, nil
}

// UpdateBranding saves the branding form. Unchanged forms are not written.
func (s *CompanyService) UpdateBranding(ctx context.Context, id kernel.CompanyID, current company.Branding, userID kernel.UserID) (*company.Company, error) {
	co, err := s.GetCompany(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	current = current.Sanitize(s.sanitizer)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	changes := company.DiffBranding(co.Branding(), current)
	if changes.IsEmpty() {
		logx.Debugf("No branding changes for company %s", co.ID)
		return co, nil
	}

	if err := s.companyRepo.Patch(ctx, co.ID, changes.Columns()); err != nil {
		return nil, errx.Wrap(err, "failed to update branding", errx.TypeInternal)
	}

	changes.ApplyTo(co)
	s.invalidatePage(ctx, co.Slug)

	return co, nil
}

// UpdateContent saves the content sections. Unchanged sections are not written.
func (s *CompanyService) UpdateContent(ctx context.Context, id kernel.CompanyID, sections []company.ContentSection, userID kernel.UserID) (*company.Company, error) {
	co, err := s.GetCompany(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if sections == nil {
		sections = []company.ContentSection{}
	}
	sections = company.SanitizeSections(s.sanitizer, sections)
	if err := company.ValidateSections(sections); err != nil {
		return nil, err
	}

	changes := company.DiffSections(co.ContentSections, sections)
	if changes.IsEmpty() {
		logx.Debugf("No content changes for company %s", co.ID)
		return co, nil
	}

	if err := s.companyRepo.Patch(ctx, co.ID, changes); err != nil {
		return nil, errx.Wrap(err, "failed to update content", errx.TypeInternal)
	}

	co.ContentSections = sections
	co.UpdatedAt = time.Now()
	s.invalidatePage(ctx, co.Slug)

	return co, nil
}

// Publish makes the careers page public
func (s *CompanyService) Publish(ctx context.Context, id kernel.CompanyID, userID kernel.UserID) (*company.Company, error) {
	return s.setPublished(ctx, id, true, userID)
}

// Unpublish hides the careers page
func (s *CompanyService) Unpublish(ctx context.Context, id kernel.CompanyID, userID kernel.UserID) (*company.Company, error) {
	return s.setPublished(ctx, id, false, userID)
}

// DeleteCompany deletes a company and its jobs
func (s *CompanyService) DeleteCompany(ctx context.Context, id kernel.CompanyID, userID kernel.UserID) error {
	co, err := s.GetCompany(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.companyRepo.Delete(ctx, co.ID); err != nil {
		return errx.Wrap(err, "failed to delete company", errx.TypeInternal)
	}

	s.invalidatePage(ctx, co.Slug)
	logx.Infof("Deleted company %s (%s)", co.ID, co.Slug)
	return nil
}

// UploadAsset stores a logo or banner image and points the company at it
func (s *CompanyService) UploadAsset(ctx context.Context, id kernel.CompanyID, kind company.AssetKind, contentType string, size int64, r io.Reader, userID kernel.UserID) (*company.AssetResponse, error) {
	co, err := s.GetCompany(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	ext, err := company.ValidateAsset(kind, contentType, size)
	if err != nil {
		return nil, err
	}

	storagePath := company.AssetPath(co, kind, uuid.NewString(), ext)
	if err := s.fileSystem.WriteFileStream(ctx, storagePath, r); err != nil {
		return nil, errx.Wrap(err, "failed to store asset", errx.TypeExternal)
	}

	url := s.fileSystem.URL(storagePath)
	if err := s.companyRepo.Patch(ctx, co.ID, changeset.ChangeSet{kind.Column(): url}); err != nil {
		if delErr := s.fileSystem.DeleteFile(context.Background(), storagePath); delErr != nil {
			logx.Warnf("Failed to clean up asset %s: %v", storagePath, delErr)
		}
		return nil, errx.Wrap(err, "failed to save asset url", errx.TypeInternal)
	}

	s.invalidatePage(ctx, co.Slug)
	return &company.AssetResponse{Kind: kind, URL: url}, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *CompanyService) setPublished(ctx context.Context, id kernel.CompanyID, published bool, userID kernel.UserID) (*company.Company, error) {
	co, err := s.GetCompany(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if co.IsPublished == published {
		return co, nil
	}

	if err := s.companyRepo.Patch(ctx, co.ID, changeset.ChangeSet{"is_published": published}); err != nil {
		return nil, errx.Wrap(err, "failed to update publish state", errx.TypeInternal)
	}

	if published {
		co.Publish()
	} else {
		co.Unpublish()
	}

	s.invalidatePage(ctx, co.Slug)
	return co, nil
}

func (s *CompanyService) invalidatePage(ctx context.Context, slug string) {
	if err := s.pages.Invalidate(ctx, slug); err != nil {
		logx.Warnf("Failed to invalidate careers page %s: %v", slug, err)
	}
}

func checkOwner(co *company.Company, userID kernel.UserID) (*company.Company, error) {
	if !co.IsOwnedBy(userID) {
		return nil, company.ErrNotOwner().WithDetail("company_id", co.ID.String())
	}
	return co, nil
}
