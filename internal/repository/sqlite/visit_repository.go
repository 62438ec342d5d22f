package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"cosmos-blog/internal/domain"
)

const recentVisitLimit = 10

type visitRepository struct {
	db *sql.DB
}

// NewVisitRepository creates a SQLite implementation of domain.VisitRepository.
func NewVisitRepository(db *sql.DB) domain.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Record(ctx context.Context, ip, userAgent, page string) error {
	if strings.TrimSpace(ip) == "" {
		return domain.ErrMissingIP
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (ip, user_agent, page, timestamp)
		VALUES (?, ?, ?, ?)
	`, ip, userAgent, page, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}

	return nil
}

// Summary runs five separate queries; concurrent inserts between them
// may skew the sub-totals slightly, which is fine for a dashboard.
func (r *visitRepository) Summary(ctx context.Context, days int) (*domain.AnalyticsSummary, error) {
	summary := &domain.AnalyticsSummary{
		Daily:  make([]domain.DailyCount, 0, days),
		Recent: make([]domain.Visit, 0, recentVisitLimit),
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&summary.Total); err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT ip) FROM visits`).Scan(&summary.Unique); err != nil {
		return nil, fmt.Errorf("count unique visitors: %w", err)
	}

	// Timestamps are written in UTC and SQLite's 'now' is UTC, so the
	// day boundary is consistent.
	if err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM visits
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&summary.Today); err != nil {
		return nil, fmt.Errorf("count today's visits: %w", err)
	}

	now := time.Now().UTC()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE(timestamp) AS date, COUNT(*) AS count
		FROM visits
		WHERE timestamp >= ?
		GROUP BY DATE(timestamp)
		ORDER BY date
	`, windowStart)
	if err != nil {
		return nil, fmt.Errorf("query daily visits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.DailyCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		summary.Daily = append(summary.Daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recentRows, err := r.db.QueryContext(ctx, `
		SELECT ip, user_agent, page, timestamp
		FROM visits
		ORDER BY timestamp DESC
		LIMIT ?
	`, recentVisitLimit)
	if err != nil {
		return nil, fmt.Errorf("query recent visits: %w", err)
	}
	defer recentRows.Close()

	for recentRows.Next() {
		var v domain.Visit
		if err := recentRows.Scan(&v.IP, &v.UserAgent, &v.Page, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan recent visit: %w", err)
		}
		summary.Recent = append(summary.Recent, v)
	}
	if err := recentRows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *visitRepository) Cleanup(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old visits: %w", err)
	}

	return res.RowsAffected()
}

func (r *visitRepository) ExportAll(ctx context.Context) ([]domain.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, ip, user_agent, page, timestamp
		FROM visits
		ORDER BY timestamp DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("export visits: %w", err)
	}
	defer rows.Close()

	visits := make([]domain.Visit, 0)
	for rows.Next() {
		var v domain.Visit
		if err := rows.Scan(&v.ID, &v.IP, &v.UserAgent, &v.Page, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		visits = append(visits, v)
	}

	return visits, rows.Err()
}
