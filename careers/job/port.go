package job

import (
	"context"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
)

// ListOptions narrows a company's job listing
type ListOptions struct {
	ActiveOnly bool
	Pagination kernel.PaginationOptions
}

type Repository interface {
	// Create persists a new job
	Create(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Patch writes only the given columns and bumps updated_at
	Patch(ctx context.Context, id kernel.JobID, changes changeset.ChangeSet) error

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// ListByCompany retrieves a page of a company's jobs, newest first
	ListByCompany(ctx context.Context, companyID kernel.CompanyID, opts ListOptions) (*kernel.Paginated[Job], error)

	// ListActiveByCompany retrieves every active job of a company, newest first
	ListActiveByCompany(ctx context.Context, companyID kernel.CompanyID) ([]Job, error)

	// ListAllByCompany retrieves every job of a company including inactive ones
	ListAllByCompany(ctx context.Context, companyID kernel.CompanyID) ([]Job, error)

	// CountByCompany counts all and active jobs of a company
	CountByCompany(ctx context.Context, companyID kernel.CompanyID) (total int, active int, err error)
}
