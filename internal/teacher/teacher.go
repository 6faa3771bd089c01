package teacher

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced teacher does not exist.
var ErrNotFound = errors.New("teacher not found")

// Teacher publishes competitions and manages students.
type Teacher struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Repository persists teachers in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes a new teacher.
func (r *Repository) Insert(ctx context.Context, t Teacher) (Teacher, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO teachers (id, name, email, department)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at
	`, t.ID, t.Name, t.Email, t.Department)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return Teacher{}, err
	}
	return t, nil
}

// GetByEmail returns a teacher by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (Teacher, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, department, created_at, updated_at
		FROM teachers WHERE email = $1
	`, email)
	var t Teacher
	if err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Department, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, err
	}
	return t, nil
}

// Update replaces a teacher's mutable fields.
func (r *Repository) Update(ctx context.Context, t Teacher) (Teacher, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE teachers
		SET name = $2, email = $3, department = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, t.ID, t.Name, t.Email, t.Department)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Teacher{}, ErrNotFound
		}
		return Teacher{}, err
	}
	return t, nil
}
