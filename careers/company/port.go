package company

import (
	"context"

	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
)

type Repository interface {
	// Create persists a new company
	Create(ctx context.Context, company *Company) error

	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id kernel.CompanyID) (*Company, error)

	// GetBySlug retrieves a company by its page slug
	GetBySlug(ctx context.Context, slug string) (*Company, error)

	// ExistsBySlug checks if a slug is taken
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// ListByUser retrieves the companies a user manages, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]Company, error)

	// Patch writes only the given columns and bumps updated_at
	Patch(ctx context.Context, id kernel.CompanyID, changes changeset.ChangeSet) error

	// Delete deletes a company and its jobs
	Delete(ctx context.Context, id kernel.CompanyID) error
}

// PageInvalidator drops the cached public page of a company
type PageInvalidator interface {
	Invalidate(ctx context.Context, slug string) error
}
