package companyinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/careers/company"
	"github.com/Abraxas-365/careers/internal/sqlpatch"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresCompanyRepository implements company.Repository using PostgreSQL
type PostgresCompanyRepository struct {
	db *sqlx.DB
}

// NewPostgresCompanyRepository creates a new PostgreSQL company repository
func NewPostgresCompanyRepository(db *sqlx.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{
		db: db,
	}
}

const companyColumns = `
	id, user_id, slug, name, tagline, description,
	logo_url, banner_url, culture_video_url,
	primary_color, secondary_color, content_sections,
	is_published, created_at, updated_at`

var patchable = sqlpatch.NewColumns(
	"name", "tagline", "description",
	"logo_url", "banner_url", "culture_video_url",
	"primary_color", "secondary_color",
	"content_sections", "is_published",
)

// ============================================================================
// Database Model
// ============================================================================

type companyModel struct {
	ID              string          `db:"id"`
	UserID          string          `db:"user_id"`
	Slug            string          `db:"slug"`
	Name            string          `db:"name"`
	Tagline         string          `db:"tagline"`
	Description     string          `db:"description"`
	LogoURL         string          `db:"logo_url"`
	BannerURL       string          `db:"banner_url"`
	CultureVideoURL string          `db:"culture_video_url"`
	PrimaryColor    string          `db:"primary_color"`
	SecondaryColor  string          `db:"secondary_color"`
	ContentSections json.RawMessage `db:"content_sections"`
	IsPublished     bool            `db:"is_published"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *companyModel) toEntity() (*company.Company, error) {
	sections := []company.ContentSection{}
	if len(m.ContentSections) > 0 {
		if err := json.Unmarshal(m.ContentSections, &sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal content sections: %w", err)
		}
	}

	return &company.Company{
		ID:              kernel.CompanyID(m.ID),
		UserID:          kernel.UserID(m.UserID),
		Slug:            m.Slug,
		Name:            m.Name,
		Tagline:         m.Tagline,
		Description:     m.Description,
		LogoURL:         m.LogoURL,
		BannerURL:       m.BannerURL,
		CultureVideoURL: m.CultureVideoURL,
		PrimaryColor:    kernel.HexColor(m.PrimaryColor),
		SecondaryColor:  kernel.HexColor(m.SecondaryColor),
		ContentSections: sections,
		IsPublished:     m.IsPublished,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// fromEntity converts domain entity to database model
func fromEntity(c *company.Company) (*companyModel, error) {
	sections, err := marshalSections(c.ContentSections)
	if err != nil {
		return nil, err
	}

	return &companyModel{
		ID:              c.ID.String(),
		UserID:          c.UserID.String(),
		Slug:            c.Slug,
		Name:            c.Name,
		Tagline:         c.Tagline,
		Description:     c.Description,
		LogoURL:         c.LogoURL,
		BannerURL:       c.BannerURL,
		CultureVideoURL: c.CultureVideoURL,
		PrimaryColor:    string(c.PrimaryColor),
		SecondaryColor:  string(c.SecondaryColor),
		ContentSections: sections,
		IsPublished:     c.IsPublished,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new company
func (r *PostgresCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model, err := fromEntity(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO companies (` + companyColumns + `
		) VALUES (
			:id, :user_id, :slug, :name, :tagline, :description,
			:logo_url, :banner_url, :culture_video_url,
			:primary_color, :secondary_color, :content_sections,
			:is_published, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return company.ErrSlugTaken().WithDetail("slug", c.Slug)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id kernel.CompanyID) (*company.Company, error) {
	return r.getOne(ctx, "id", id.String())
}

// GetBySlug retrieves a company by slug
func (r *PostgresCompanyRepository) GetBySlug(ctx context.Context, slug string) (*company.Company, error) {
	return r.getOne(ctx, "slug", slug)
}

// ExistsBySlug checks if a slug is taken
func (r *PostgresCompanyRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM companies WHERE slug = $1)`, slug); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// ListByUser retrieves the companies a user manages
func (r *PostgresCompanyRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]company.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var models []companyModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, fmt.Errorf("failed to list user companies: %w", err)
	}

	companies := make([]company.Company, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		companies = append(companies, *entity)
	}

	return companies, nil
}

// Patch writes only the changed columns
func (r *PostgresCompanyRepository) Patch(ctx context.Context, id kernel.CompanyID, changes changeset.ChangeSet) error {
	stmt, err := sqlpatch.Build("companies", patchable, id.String(), changes, toDBValue)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, stmt.Query, stmt.Args...)
	if err != nil {
		return fmt.Errorf("failed to patch company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return company.ErrCompanyNotFound().WithDetail("company_id", id.String())
	}

	return nil
}

// Delete deletes a company. Jobs and applications cascade.
func (r *PostgresCompanyRepository) Delete(ctx context.Context, id kernel.CompanyID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return company.ErrCompanyNotFound().WithDetail("company_id", id.String())
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (r *PostgresCompanyRepository) getOne(ctx context.Context, column, value string) (*company.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE %s = $1`, companyColumns, column)

	var model companyModel
	if err := r.db.GetContext(ctx, &model, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, company.ErrCompanyNotFound().WithDetail(column, value)
		}
		return nil, fmt.Errorf("failed to get company by %s: %w", column, err)
	}

	return model.toEntity()
}

func toDBValue(col string, v any) (any, error) {
	if col == "content_sections" {
		sections, ok := v.([]company.ContentSection)
		if !ok {
			return nil, fmt.Errorf("unexpected content_sections value %T", v)
		}
		return marshalSections(sections)
	}
	return v, nil
}

func marshalSections(sections []company.ContentSection) (json.RawMessage, error) {
	if sections == nil {
		sections = []company.ContentSection{}
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content sections: %w", err)
	}
	return raw, nil
}
