package competition

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced competition does not exist.
var ErrNotFound = errors.New("competition not found")

// ErrDuplicateURL is returned when another competition already uses the URL.
var ErrDuplicateURL = errors.New("competition url already exists")

// Repository persists competitions in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const compColumns = `id, name, url, about, category, status, deadline, start_date, end_date, location, team_size, prize_pool, priority, created_at, updated_at`

func scanCompetition(row interface{ Scan(...any) error }, c *Competition) error {
	return row.Scan(&c.ID, &c.Name, &c.URL, &c.About, &c.Category, &c.Status,
		&c.Deadline, &c.StartDate, &c.EndDate, &c.Location, &c.TeamSize,
		&c.PrizePool, &c.Priority, &c.CreatedAt, &c.UpdatedAt)
}

// Insert writes a new competition. The URL must be unused.
func (r *Repository) Insert(ctx context.Context, c Competition) (Competition, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = StatusRegistrationOpen
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM competitions WHERE url = $1)`, c.URL,
	).Scan(&exists); err != nil {
		return Competition{}, err
	}
	if exists {
		return Competition{}, ErrDuplicateURL
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO competitions (id, name, url, about, category, status, deadline, start_date, end_date, location, team_size, prize_pool, priority)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.URL, c.About, c.Category, c.Status, c.Deadline,
		c.StartDate, c.EndDate, c.Location, c.TeamSize, c.PrizePool, c.Priority)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return Competition{}, err
	}
	return c, nil
}

// Update replaces all teacher-editable fields of a competition.
func (r *Repository) Update(ctx context.Context, c Competition) (Competition, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE competitions
		SET name = $2, url = $3, about = $4, category = $5, status = $6,
		    deadline = $7, start_date = $8, end_date = $9, location = $10,
		    team_size = $11, prize_pool = $12, priority = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, c.ID, c.Name, c.URL, c.About, c.Category, c.Status, c.Deadline,
		c.StartDate, c.EndDate, c.Location, c.TeamSize, c.PrizePool, c.Priority)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Competition{}, ErrNotFound
		}
		return Competition{}, err
	}
	return c, nil
}

// GetByID returns a single competition.
func (r *Repository) GetByID(ctx context.Context, id string) (Competition, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+compColumns+` FROM competitions WHERE id = $1`, id)
	var c Competition
	if err := scanCompetition(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Competition{}, ErrNotFound
		}
		return Competition{}, err
	}
	return c, nil
}

// Retire soft-deletes a competition by forcing it COMPLETED.
func (r *Repository) Retire(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE competitions SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, StatusCompleted)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all competitions with their team counts, soonest deadline first.
func (r *Repository) List(ctx context.Context) ([]Competition, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.url, c.about, c.category, c.status, c.deadline,
		       c.start_date, c.end_date, c.location, c.team_size, c.prize_pool,
		       c.priority, c.created_at, c.updated_at,
		       COUNT(t.id) AS team_count
		FROM competitions c
		LEFT JOIN teams t ON t.competition_id = c.id
		GROUP BY c.id
		ORDER BY c.deadline ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Competition
	for rows.Next() {
		var c Competition
		if err := rows.Scan(&c.ID, &c.Name, &c.URL, &c.About, &c.Category,
			&c.Status, &c.Deadline, &c.StartDate, &c.EndDate, &c.Location,
			&c.TeamSize, &c.PrizePool, &c.Priority, &c.CreatedAt, &c.UpdatedAt,
			&c.TeamCount); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// SweepRow is the subset of a competition the lifecycle sweep needs.
type SweepRow struct {
	ID        string
	Status    Status
	Deadline  time.Time
	StartDate time.Time
	EndDate   time.Time
}

// ListForSweep returns every competition's id, status and dates.
func (r *Repository) ListForSweep(ctx context.Context) ([]SweepRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, status, deadline, start_date, end_date FROM competitions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []SweepRow
	for rows.Next() {
		var sr SweepRow
		if err := rows.Scan(&sr.ID, &sr.Status, &sr.Deadline, &sr.StartDate, &sr.EndDate); err != nil {
			return nil, err
		}
		res = append(res, sr)
	}
	return res, rows.Err()
}

// UpdateStatus persists a status derived by the lifecycle sweep.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE competitions SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	return err
}
