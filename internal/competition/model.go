package competition

import "time"

// Status is the lifecycle state of a competition.
type Status string

const (
	StatusRegistrationOpen Status = "REGISTRATION_OPEN"
	StatusUpcoming         Status = "UPCOMING"
	StatusOngoing          Status = "ONGOING"
	StatusCompleted        Status = "COMPLETED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusRegistrationOpen, StatusUpcoming, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// Competition is a published event that teams register for.
// Deadline, StartDate and EndDate are expected to be ordered
// deadline <= start <= end; the lifecycle engine assumes but does not
// enforce this.
type Competition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	About     string    `json:"about"`
	Category  string    `json:"category"`
	Status    Status    `json:"status"`
	Deadline  time.Time `json:"deadline"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Location  string    `json:"location"`
	TeamSize  int       `json:"team_size"`
	PrizePool int64     `json:"prize_pool"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	TeamCount int       `json:"team_count"`
}
