package student

import "time"

// Student is a registered participant. RegisterNo is the external
// registration code used to place a student on a team roster.
type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	RegisterNo string    `json:"register_no"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
