package application

import (
	"context"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
)

// ListOptions narrows a job's applications
type ListOptions struct {
	Status     Status
	Pagination kernel.PaginationOptions
}

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// ExistsByJobAndEmail checks if the candidate already applied to the job
	ExistsByJobAndEmail(ctx context.Context, jobID kernel.JobID, email kernel.Email) (bool, error)

	// ListByJob retrieves a page of a job's applications, newest first
	ListByJob(ctx context.Context, jobID kernel.JobID, opts ListOptions) (*kernel.Paginated[Application], error)

	// Patch writes only the given columns and bumps updated_at
	Patch(ctx context.Context, id kernel.ApplicationID, changes changeset.ChangeSet) error
}
