package team

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"comphub/internal/competition"
	"comphub/internal/student"
)

// Repository persists teams and their rosters in Postgres. Composite
// mutations (create, roster replace, delete) run inside one transaction
// so a partial roster is never observable.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// InsertTeam creates the team and its full roster atomically.
func (r *Repository) InsertTeam(ctx context.Context, t Team, members []Member) (Team, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusRegistered
	}
	if t.Activity == "" {
		t.Activity = ActivityOnline
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Team{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO teams (id, competition_id, name, motive, experience_level, status, activity)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, t.ID, t.CompetitionID, t.Name, t.Motive, t.ExperienceLevel, t.Status, t.Activity)
	if err != nil {
		return Team{}, err
	}
	if err := insertMembers(ctx, tx, t.ID, members); err != nil {
		return Team{}, err
	}
	if err := tx.Commit(); err != nil {
		return Team{}, err
	}
	return r.GetByID(ctx, t.ID)
}

// ReplaceRoster updates the team's editable fields and swaps its entire
// roster in one transaction: all members are deleted and the new set
// inserted, or nothing is persisted at all.
func (r *Repository) ReplaceRoster(ctx context.Context, t Team, members []Member) (Team, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Team{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE teams
		SET name = $2, motive = $3, experience_level = $4, updated_at = NOW()
		WHERE id = $1
	`, t.ID, t.Name, t.Motive, t.ExperienceLevel)
	if err != nil {
		return Team{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Team{}, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, t.ID); err != nil {
		return Team{}, err
	}
	if err := insertMembers(ctx, tx, t.ID, members); err != nil {
		return Team{}, err
	}
	if err := tx.Commit(); err != nil {
		return Team{}, err
	}
	return r.GetByID(ctx, t.ID)
}

// DeleteTeam removes the roster and the team atomically.
func (r *Repository) DeleteTeam(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

// UpdateStatus persists a new status; a non-empty activity is written in
// the same statement so both fields land together.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status Status, activity Activity) (Team, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE teams
		SET status = $2,
		    activity = CASE WHEN $3 = '' THEN activity ELSE $3 END,
		    updated_at = NOW()
		WHERE id = $1
	`, id, status, string(activity))
	if err != nil {
		return Team{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Team{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// SetCertificateURL stores the uploaded certificate location.
func (r *Repository) SetCertificateURL(ctx context.Context, id, url string) (Team, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE teams SET certificate_url = $2, updated_at = NOW() WHERE id = $1
	`, id, url)
	if err != nil {
		return Team{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Team{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

const teamColumns = `id, competition_id, name, motive, experience_level, certificate_url, status, activity, created_at, updated_at`

// GetByID returns a team with its roster and parent competition attached.
func (r *Repository) GetByID(ctx context.Context, id string) (Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	var t Team
	if err := scanTeam(row, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Team{}, ErrNotFound
		}
		return Team{}, err
	}
	if err := r.attachMembers(ctx, &t); err != nil {
		return Team{}, err
	}
	if err := r.attachCompetition(ctx, &t); err != nil {
		return Team{}, err
	}
	return t, nil
}

// ListByStudent returns every team the student belongs to, newest first,
// with rosters and competitions attached.
func (r *Repository) ListByStudent(ctx context.Context, studentID string) ([]Team, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+teamColumns+` FROM teams
		WHERE id IN (SELECT team_id FROM team_members WHERE student_id = $1)
		ORDER BY created_at DESC
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Team
	for rows.Next() {
		var t Team
		if err := scanTeam(rows, &t); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range res {
		if err := r.attachMembers(ctx, &res[i]); err != nil {
			return nil, err
		}
		if err := r.attachCompetition(ctx, &res[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// StudentStats aggregates team participation for one student.
func (r *Repository) StudentStats(ctx context.Context, studentID string) (StudentStats, error) {
	var st StudentStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE t.activity = 'ONLINE'),
			COUNT(*) FILTER (WHERE tm.role = 'LEADER'),
			COALESCE((
				SELECT COUNT(*) FROM team_members other
				WHERE other.team_id IN (SELECT team_id FROM team_members WHERE student_id = $1)
				  AND other.student_id <> $1
			), 0)
		FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.student_id = $1
	`, studentID).Scan(&st.Teams, &st.ActiveTeams, &st.LedTeams, &st.Teammates)
	return st, err
}

// DashStats aggregates registration outcomes for one student.
func (r *Repository) DashStats(ctx context.Context, studentID string) (DashStats, error) {
	var st DashStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE t.activity = 'ONLINE'),
			COUNT(*) FILTER (WHERE t.status = 'SHORTLISTED'),
			COUNT(*) FILTER (WHERE t.status = 'WON')
		FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.student_id = $1
	`, studentID).Scan(&st.Registered, &st.ActiveTeams, &st.Shortlisted, &st.Won)
	return st, err
}

func scanTeam(row interface{ Scan(...any) error }, t *Team) error {
	return row.Scan(&t.ID, &t.CompetitionID, &t.Name, &t.Motive,
		&t.ExperienceLevel, &t.CertificateURL, &t.Status, &t.Activity,
		&t.CreatedAt, &t.UpdatedAt)
}

func insertMembers(ctx context.Context, tx *sql.Tx, teamID string, members []Member) error {
	for i, m := range members {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO team_members (id, team_id, student_id, role, position)
			VALUES ($1,$2,$3,$4,$5)
		`, id, teamID, m.StudentID, m.Role, i); err != nil {
			return fmt.Errorf("insert member %d: %w", i, err)
		}
	}
	return nil
}

func (r *Repository) attachMembers(ctx context.Context, t *Team) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tm.id, tm.team_id, tm.student_id, tm.role, tm.position,
		       s.id, s.name, s.email, s.register_no, s.department, s.year, s.created_at, s.updated_at
		FROM team_members tm
		JOIN students s ON s.id = tm.student_id
		WHERE tm.team_id = $1
		ORDER BY tm.position
	`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var m Member
		var s student.Student
		if err := rows.Scan(&m.ID, &m.TeamID, &m.StudentID, &m.Role, &m.Position,
			&s.ID, &s.Name, &s.Email, &s.RegisterNo, &s.Department, &s.Year,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return err
		}
		m.Student = &s
		t.Members = append(t.Members, m)
	}
	return rows.Err()
}

func (r *Repository) attachCompetition(ctx context.Context, t *Team) error {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, url, about, category, status, deadline, start_date, end_date, location, team_size, prize_pool, priority, created_at, updated_at
		FROM competitions WHERE id = $1
	`, t.CompetitionID)
	var c competition.Competition
	if err := row.Scan(&c.ID, &c.Name, &c.URL, &c.About, &c.Category, &c.Status,
		&c.Deadline, &c.StartDate, &c.EndDate, &c.Location, &c.TeamSize,
		&c.PrizePool, &c.Priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	t.Competition = &c
	return nil
}
