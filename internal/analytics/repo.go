package analytics

import (
	"context"
	"database/sql"
	"time"
)

// Repository runs the dashboard aggregate queries.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Overview is the platform-wide counter block.
type Overview struct {
	OngoingCompetitions int `json:"ongoing_competitions"`
	RegisteredTeams     int `json:"registered_teams"`
	ShortlistedTeams    int `json:"shortlisted_teams"`
	WonTeams            int `json:"won_teams"`
	RejectedTeams       int `json:"rejected_teams"`
}

// GetOverview returns platform-wide counts.
func (r *Repository) GetOverview(ctx context.Context) (Overview, error) {
	var o Overview
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM competitions WHERE status = 'ONGOING'),
			COUNT(*) FILTER (WHERE status = 'REGISTERED'),
			COUNT(*) FILTER (WHERE status = 'SHORTLISTED'),
			COUNT(*) FILTER (WHERE status = 'WON'),
			COUNT(*) FILTER (WHERE status = 'REJECTED')
		FROM teams
	`).Scan(&o.OngoingCompetitions, &o.RegisteredTeams, &o.ShortlistedTeams,
		&o.WonTeams, &o.RejectedTeams)
	return o, err
}

// CategoryCount is the number of competitions in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountByCategory groups competitions by category.
func (r *Repository) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM competitions GROUP BY category ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// MonthCount is the number of team registrations in one calendar month.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

// RegistrationsByMonth counts REGISTERED teams per month over the last
// six months.
func (r *Repository) RegistrationsByMonth(ctx context.Context) ([]MonthCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date_trunc('month', created_at) AS month, COUNT(*)
		FROM teams
		WHERE status = 'REGISTERED' AND created_at >= CURRENT_DATE - INTERVAL '6 months'
		GROUP BY month
		ORDER BY month
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []MonthCount
	for rows.Next() {
		var m MonthCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// CompetitionCount pairs a competition with its team count.
type CompetitionCount struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Teams  int    `json:"teams"`
}

// MostRegistered returns the competitions with the most teams.
func (r *Repository) MostRegistered(ctx context.Context, limit int) ([]CompetitionCount, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.status, COUNT(t.id) AS teams
		FROM competitions c
		LEFT JOIN teams t ON t.competition_id = c.id
		GROUP BY c.id
		ORDER BY teams DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []CompetitionCount
	for rows.Next() {
		var c CompetitionCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Teams); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// RecentCompleted returns recently finished competitions.
func (r *Repository) RecentCompleted(ctx context.Context, limit int) ([]CompetitionCount, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.status, COUNT(t.id) AS teams
		FROM competitions c
		LEFT JOIN teams t ON t.competition_id = c.id
		WHERE c.status = 'COMPLETED'
		GROUP BY c.id
		ORDER BY c.end_date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []CompetitionCount
	for rows.Next() {
		var c CompetitionCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Teams); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
