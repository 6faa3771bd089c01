package activity

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Event kinds recorded in the activity feed.
const (
	KindTeamCreated   = "team.created"
	KindStatusChanged = "team.status_changed"
	KindTeamDeleted   = "team.deleted"
)

// Event is the payload published to the queue by the API and drained
// into the activity log by the sweeper binary.
type Event struct {
	Kind     string `json:"kind"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Encode serializes an event for the queue.
func (e Event) Encode() []byte {
	raw, _ := json.Marshal(e)
	return raw
}

// Decode parses a queue payload.
func Decode(raw []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(raw, &e)
	return e, err
}

// Entry is a persisted activity row.
type Entry struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	TeamID    string    `json:"team_id,omitempty"`
	TeamName  string    `json:"team_name,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists the activity feed.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends an event to the feed.
func (r *Repository) Insert(ctx context.Context, e Event) error {
	var teamID any
	if e.TeamID != "" {
		teamID = e.TeamID
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (kind, team_id, team_name, detail)
		VALUES ($1,$2,$3,$4)
	`, e.Kind, teamID, e.TeamName, e.Detail)
	return err
}

// ListRecent returns the newest entries, most recent first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, COALESCE(team_id::text, ''), team_name, detail, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Kind, &e.TeamID, &e.TeamName, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
