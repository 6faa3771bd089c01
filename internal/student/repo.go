package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced student does not exist.
var ErrNotFound = errors.New("student not found")

// ErrDuplicate is returned when the email or registration code is taken.
var ErrDuplicate = errors.New("student email or registration code already exists")

// Repository persists students in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const studentColumns = `id, name, email, register_no, department, year, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }, s *Student) error {
	return row.Scan(&s.ID, &s.Name, &s.Email, &s.RegisterNo, &s.Department,
		&s.Year, &s.CreatedAt, &s.UpdatedAt)
}

// Insert writes a new student; email and registration code must be unused.
func (r *Repository) Insert(ctx context.Context, s Student) (Student, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE email = $1 OR register_no = $2)`,
		s.Email, s.RegisterNo,
	).Scan(&exists); err != nil {
		return Student{}, err
	}
	if exists {
		return Student{}, ErrDuplicate
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO students (id, name, email, register_no, department, year)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at
	`, s.ID, s.Name, s.Email, s.RegisterNo, s.Department, s.Year)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return Student{}, err
	}
	return s, nil
}

// Update replaces a student's mutable fields.
func (r *Repository) Update(ctx context.Context, s Student) (Student, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE students
		SET name = $2, email = $3, register_no = $4, department = $5, year = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`, s.ID, s.Name, s.Email, s.RegisterNo, s.Department, s.Year)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Student{}, ErrNotFound
		}
		return Student{}, err
	}
	return s, nil
}

// Delete removes a student.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all students, newest first.
func (r *Repository) List(ctx context.Context) ([]Student, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Student
	for rows.Next() {
		var s Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// GetByEmail returns a student by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (Student, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email)
	var s Student
	if err := scanStudent(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Student{}, ErrNotFound
		}
		return Student{}, err
	}
	return s, nil
}

// GetByCodes returns the students whose registration codes appear in codes.
// Codes with no matching student are simply absent from the result.
func (r *Repository) GetByCodes(ctx context.Context, codes []string) ([]Student, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	query := `SELECT ` + studentColumns + ` FROM students WHERE register_no IN (`
	args := make([]any, 0, len(codes))
	for i, code := range codes {
		if i > 0 {
			query += ","
		}
		query += fmt.Sprintf("$%d", i+1)
		args = append(args, code)
	}
	query += ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Student
	for rows.Next() {
		var s Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
