package analyticsinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresAnalyticsRepository implements analytics.Repository using PostgreSQL
type PostgresAnalyticsRepository struct {
	db *sqlx.DB
}

// NewPostgresAnalyticsRepository creates a new PostgreSQL analytics repository
func NewPostgresAnalyticsRepository(db *sqlx.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type dailyStatsModel struct {
	CompanyID         string          `db:"company_id"`
	Date              time.Time       `db:"date"`
	PageViews         int64           `db:"page_views"`
	UniqueVisitors    int64           `db:"unique_visitors"`
	JobViews          json.RawMessage `db:"job_views"`
	ApplicationClicks int64           `db:"application_clicks"`
}

func (m *dailyStatsModel) toEntity() (analytics.DailyStats, error) {
	stats := analytics.NewDailyStats(kernel.CompanyID(m.CompanyID), m.Date)
	stats.PageViews = m.PageViews
	stats.UniqueVisitors = m.UniqueVisitors
	stats.ApplicationClicks = m.ApplicationClicks

	if len(m.JobViews) > 0 {
		if err := json.Unmarshal(m.JobViews, &stats.JobViews); err != nil {
			return stats, fmt.Errorf("failed to unmarshal job views: %w", err)
		}
	}
	return stats, nil
}

func fromEntity(s analytics.DailyStats) (*dailyStatsModel, error) {
	date, err := time.Parse(analytics.DateLayout, s.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid stats date %q: %w", s.Date, err)
	}

	jobViews := s.JobViews
	if jobViews == nil {
		jobViews = map[kernel.JobID]int64{}
	}
	raw, err := json.Marshal(jobViews)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job views: %w", err)
	}

	return &dailyStatsModel{
		CompanyID:         s.CompanyID.String(),
		Date:              date,
		PageViews:         s.PageViews,
		UniqueVisitors:    s.UniqueVisitors,
		JobViews:          raw,
		ApplicationClicks: s.ApplicationClicks,
	}, nil
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Upsert writes absolute daily counters. Re-flushing the same day overwrites.
func (r *PostgresAnalyticsRepository) Upsert(ctx context.Context, stats []analytics.DailyStats) error {
	if len(stats) == 0 {
		return nil
	}

	query := `
		INSERT INTO company_analytics (
			company_id, date, page_views, unique_visitors, job_views, application_clicks
		) VALUES (
			:company_id, :date, :page_views, :unique_visitors, :job_views, :application_clicks
		)
		ON CONFLICT (company_id, date) DO UPDATE SET
			page_views = EXCLUDED.page_views,
			unique_visitors = EXCLUDED.unique_visitors,
			job_views = EXCLUDED.job_views,
			application_clicks = EXCLUDED.application_clicks
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range stats {
		model, err := fromEntity(s)
		if err != nil {
			return err
		}
		if _, err := tx.NamedExecContext(ctx, query, model); err != nil {
			return fmt.Errorf("failed to upsert analytics for company %s: %w", s.CompanyID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analytics: %w", err)
	}
	return nil
}

// ListByCompany returns the stored days in [from, to]
func (r *PostgresAnalyticsRepository) ListByCompany(ctx context.Context, companyID kernel.CompanyID, from, to time.Time) ([]analytics.DailyStats, error) {
	query := `
		SELECT company_id, date, page_views, unique_visitors, job_views, application_clicks
		FROM company_analytics
		WHERE company_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	var models []dailyStatsModel
	if err := r.db.SelectContext(ctx, &models, query, companyID.String(), analytics.Day(from), analytics.Day(to)); err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}

	stats := make([]analytics.DailyStats, 0, len(models))
	for i := range models {
		s, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}
