package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/careers/job"
	"github.com/Abraxas-365/careers/internal/sqlpatch"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

const jobColumns = `
	id, company_id, title, department, location, job_type,
	experience_level, location_type, description,
	responsibilities, qualifications, benefits,
	salary_min, salary_max, salary_currency, application_url,
	is_active, created_at, updated_at`

// Columns the job form may write
var patchable = func() sqlpatch.Columns {
	names := make([]string, 0)
	for k := range job.NewDraft().Values() {
		names = append(names, k)
	}
	return sqlpatch.NewColumns(names...)
}()

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID               string         `db:"id"`
	CompanyID        string         `db:"company_id"`
	Title            string         `db:"title"`
	Department       string         `db:"department"`
	Location         string         `db:"location"`
	JobType          string         `db:"job_type"`
	ExperienceLevel  string         `db:"experience_level"`
	LocationType     string         `db:"location_type"`
	Description      string         `db:"description"`
	Responsibilities pq.StringArray `db:"responsibilities"`
	Qualifications   pq.StringArray `db:"qualifications"`
	Benefits         pq.StringArray `db:"benefits"`
	SalaryMin        sql.NullInt64  `db:"salary_min"`
	SalaryMax        sql.NullInt64  `db:"salary_max"`
	SalaryCurrency   string         `db:"salary_currency"`
	ApplicationURL   string         `db:"application_url"`
	IsActive         bool           `db:"is_active"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() job.Job {
	return job.Job{
		ID:               kernel.JobID(m.ID),
		CompanyID:        kernel.CompanyID(m.CompanyID),
		Title:            m.Title,
		Department:       m.Department,
		Location:         m.Location,
		JobType:          m.JobType,
		ExperienceLevel:  m.ExperienceLevel,
		LocationType:     m.LocationType,
		Description:      m.Description,
		Responsibilities: nonNil(m.Responsibilities),
		Qualifications:   nonNil(m.Qualifications),
		Benefits:         nonNil(m.Benefits),
		SalaryMin:        fromNullInt(m.SalaryMin),
		SalaryMax:        fromNullInt(m.SalaryMax),
		SalaryCurrency:   m.SalaryCurrency,
		ApplicationURL:   m.ApplicationURL,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:               j.ID.String(),
		CompanyID:        j.CompanyID.String(),
		Title:            j.Title,
		Department:       j.Department,
		Location:         j.Location,
		JobType:          j.JobType,
		ExperienceLevel:  j.ExperienceLevel,
		LocationType:     j.LocationType,
		Description:      j.Description,
		Responsibilities: pq.StringArray(nonNil(j.Responsibilities)),
		Qualifications:   pq.StringArray(nonNil(j.Qualifications)),
		Benefits:         pq.StringArray(nonNil(j.Benefits)),
		SalaryMin:        toNullInt(j.SalaryMin),
		SalaryMax:        toNullInt(j.SalaryMax),
		SalaryCurrency:   j.SalaryCurrency,
		ApplicationURL:   j.ApplicationURL,
		IsActive:         j.IsActive,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	query := `
		INSERT INTO jobs (` + jobColumns + `
		) VALUES (
			:id, :company_id, :title, :department, :location, :job_type,
			:experience_level, :location_type, :description,
			:responsibilities, :qualifications, :benefits,
			:salary_min, :salary_max, :salary_currency, :application_url,
			:is_active, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("invalid company_id: %w", err)
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var model jobModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	entity := model.toEntity()
	return &entity, nil
}

// Patch writes only the changed columns
func (r *PostgresJobRepository) Patch(ctx context.Context, id kernel.JobID, changes changeset.ChangeSet) error {
	stmt, err := sqlpatch.Build("jobs", patchable, id.String(), changes, toDBValue)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, stmt.Query, stmt.Args...)
	if err != nil {
		return fmt.Errorf("failed to patch job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	return nil
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}

	return nil
}

// ListByCompany retrieves a page of a company's jobs
func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID, opts job.ListOptions) (*kernel.Paginated[job.Job], error) {
	pagination := opts.Pagination.Normalize()

	where := "WHERE company_id = $1"
	if opts.ActiveOnly {
		where += " AND is_active = TRUE"
	}

	// Count total
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM jobs "+where, companyID.String()); err != nil {
		return nil, fmt.Errorf("failed to count company jobs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, jobColumns, where)

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, companyID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	return kernel.NewPaginated(toEntities(models), pagination, total), nil
}

// ListActiveByCompany retrieves every active job of a company
func (r *PostgresJobRepository) ListActiveByCompany(ctx context.Context, companyID kernel.CompanyID) ([]job.Job, error) {
	return r.listAll(ctx, companyID, true)
}

// ListAllByCompany retrieves every job of a company
func (r *PostgresJobRepository) ListAllByCompany(ctx context.Context, companyID kernel.CompanyID) ([]job.Job, error) {
	return r.listAll(ctx, companyID, false)
}

func (r *PostgresJobRepository) listAll(ctx context.Context, companyID kernel.CompanyID, activeOnly bool) ([]job.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE company_id = $1 AND (NOT $2::boolean OR is_active)
		ORDER BY created_at DESC
	`

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, companyID.String(), activeOnly); err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	return toEntities(models), nil
}

// CountByCompany counts all and active jobs of a company
func (r *PostgresJobRepository) CountByCompany(ctx context.Context, companyID kernel.CompanyID) (int, int, error) {
	var counts struct {
		Total  int `db:"total"`
		Active int `db:"active"`
	}

	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active
		FROM jobs
		WHERE company_id = $1
	`

	if err := r.db.GetContext(ctx, &counts, query, companyID.String()); err != nil {
		return 0, 0, fmt.Errorf("failed to count company jobs: %w", err)
	}

	return counts.Total, counts.Active, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func toEntities(models []jobModel) []job.Job {
	entities := make([]job.Job, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].toEntity())
	}
	return entities
}

func toDBValue(_ string, v any) (any, error) {
	switch t := v.(type) {
	case []string:
		return pq.StringArray(nonNil(t)), nil
	case *int:
		return toNullInt(t), nil
	default:
		return v, nil
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toNullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
