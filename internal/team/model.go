package team

import (
	"time"

	"comphub/internal/competition"
	"comphub/internal/student"
)

// Status is the registration-result state of a team.
type Status string

const (
	StatusRegistered  Status = "REGISTERED"
	StatusShortlisted Status = "SHORTLISTED"
	StatusWon         Status = "WON"
	StatusRejected    Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusRegistered, StatusShortlisted, StatusWon, StatusRejected:
		return true
	}
	return false
}

// Activity marks whether a team is still eligible for further action.
// It is derived: OFFLINE exactly when status is WON or REJECTED.
type Activity string

const (
	ActivityOnline  Activity = "ONLINE"
	ActivityOffline Activity = "OFFLINE"
)

// Role of a member within a team. The first roster entry is the LEADER,
// every other entry a DEVELOPER.
type Role string

const (
	RoleLeader    Role = "LEADER"
	RoleDeveloper Role = "DEVELOPER"
)

// Team belongs to exactly one competition and owns its roster.
type Team struct {
	ID              string                   `json:"id"`
	CompetitionID   string                   `json:"competition_id"`
	Name            string                   `json:"name"`
	Motive          string                   `json:"motive"`
	ExperienceLevel string                   `json:"experience_level"`
	CertificateURL  string                   `json:"certificate_url,omitempty"`
	Status          Status                   `json:"status"`
	Activity        Activity                 `json:"activity"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	Members         []Member                 `json:"members,omitempty"`
	Competition     *competition.Competition `json:"competition,omitempty"`
}

// Member joins a student to a team. Members are ordered by Position;
// position zero is the leader.
type Member struct {
	ID        string           `json:"id"`
	TeamID    string           `json:"team_id"`
	StudentID string           `json:"student_id"`
	Role      Role             `json:"role"`
	Position  int              `json:"position"`
	Student   *student.Student `json:"student,omitempty"`
}

// StudentStats summarizes one student's team participation.
type StudentStats struct {
	Teams       int `json:"team_count"`
	ActiveTeams int `json:"active_teams"`
	LedTeams    int `json:"lead_teams"`
	Teammates   int `json:"member_count"`
}

// DashStats summarizes one student's registration outcomes.
type DashStats struct {
	Registered  int `json:"reg_count"`
	ActiveTeams int `json:"active_teams"`
	Shortlisted int `json:"short_count"`
	Won         int `json:"won_count"`
}
