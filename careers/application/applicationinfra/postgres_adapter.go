package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/careers/application"
	"github.com/Abraxas-365/careers/internal/sqlpatch"
	"github.com/Abraxas-365/careers/pkg/changeset"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	id, job_id, company_id, candidate_name, candidate_email, candidate_phone,
	resume_url, cover_letter, status, status_changed_at, created_at, updated_at`

var patchable = sqlpatch.NewColumns("status", "status_changed_at", "resume_url")

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID              string       `db:"id"`
	JobID           string       `db:"job_id"`
	CompanyID       string       `db:"company_id"`
	CandidateName   string       `db:"candidate_name"`
	CandidateEmail  string       `db:"candidate_email"`
	CandidatePhone  string       `db:"candidate_phone"`
	ResumeURL       string       `db:"resume_url"`
	CoverLetter     string       `db:"cover_letter"`
	Status          string       `db:"status"`
	StatusChangedAt sql.NullTime `db:"status_changed_at"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	var changedAt *time.Time
	if m.StatusChangedAt.Valid {
		t := m.StatusChangedAt.Time
		changedAt = &t
	}

	return &application.Application{
		ID:              kernel.ApplicationID(m.ID),
		JobID:           kernel.JobID(m.JobID),
		CompanyID:       kernel.CompanyID(m.CompanyID),
		CandidateName:   m.CandidateName,
		CandidateEmail:  kernel.Email(m.CandidateEmail),
		CandidatePhone:  kernel.Phone(m.CandidatePhone),
		ResumeURL:       m.ResumeURL,
		CoverLetter:     m.CoverLetter,
		Status:          application.Status(m.Status),
		StatusChangedAt: changedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	var changedAt sql.NullTime
	if a.StatusChangedAt != nil {
		changedAt = sql.NullTime{Time: *a.StatusChangedAt, Valid: true}
	}

	return &applicationModel{
		ID:              a.ID.String(),
		JobID:           a.JobID.String(),
		CompanyID:       a.CompanyID.String(),
		CandidateName:   a.CandidateName,
		CandidateEmail:  string(a.CandidateEmail),
		CandidatePhone:  string(a.CandidatePhone),
		ResumeURL:       a.ResumeURL,
		CoverLetter:     a.CoverLetter,
		Status:          string(a.Status),
		StatusChangedAt: changedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `
		) VALUES (
			:id, :job_id, :company_id, :candidate_name, :candidate_email, :candidate_phone,
			:resume_url, :cover_letter, :status, :status_changed_at, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(a)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return application.ErrAlreadyApplied().WithDetail("job_id", a.JobID.String())
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return model.toEntity(), nil
}

// ExistsByJobAndEmail checks if the candidate already applied to the job
func (r *PostgresApplicationRepository) ExistsByJobAndEmail(ctx context.Context, jobID kernel.JobID, email kernel.Email) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_email = $2)`
	if err := r.db.GetContext(ctx, &exists, query, jobID.String(), string(email.Normalize())); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// ListByJob retrieves a page of a job's applications, newest first
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID kernel.JobID, opts application.ListOptions) (*kernel.Paginated[application.Application], error) {
	where := `WHERE job_id = $1 AND ($2::text = '' OR status = $2::text)`
	args := []any{jobID.String(), string(opts.Status)}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications `+where, args...); err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications ` + where + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	pagination := opts.Pagination.Normalize()
	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, append(args, pagination.PageSize, pagination.Offset())...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	apps := make([]application.Application, 0, len(models))
	for i := range models {
		apps = append(apps, *models[i].toEntity())
	}

	return kernel.NewPaginated(apps, pagination, total), nil
}

// Patch writes only the changed columns
func (r *PostgresApplicationRepository) Patch(ctx context.Context, id kernel.ApplicationID, changes changeset.ChangeSet) error {
	stmt, err := sqlpatch.Build("applications", patchable, id.String(), changes, nil)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, stmt.Query, stmt.Args...)
	if err != nil {
		return fmt.Errorf("failed to patch application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	return nil
}
