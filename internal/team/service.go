package team

import (
	"context"
	"strings"

	"comphub/internal/metrics"
	"comphub/internal/student"
)

// Store is the persistence surface the roster manager and status
// workflow require. *Repository implements it.
type Store interface {
	InsertTeam(ctx context.Context, t Team, members []Member) (Team, error)
	ReplaceRoster(ctx context.Context, t Team, members []Member) (Team, error)
	DeleteTeam(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status Status, activity Activity) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)
}

// CodeResolver maps registration codes onto students.
type CodeResolver interface {
	Resolve(ctx context.Context, codes []string) (resolved []student.Student, unknown []string, err error)
}

// Service validates roster mutations and drives the team status
// workflow. Each composite mutation maps to a single store transaction.
type Service struct {
	store    Store
	resolver CodeResolver
}

// NewService creates a service.
func NewService(store Store, resolver CodeResolver) *Service {
	return &Service{store: store, resolver: resolver}
}

// CreateInput carries the fields of a team registration request.
type CreateInput struct {
	CompetitionID   string
	Name            string
	Motive          string
	ExperienceLevel string
	Codes           []string
}

// UpdateInput carries a team edit including its replacement roster.
type UpdateInput struct {
	Name            string
	Motive          string
	ExperienceLevel string
	Codes           []string
}

// Create registers a team. The registration codes must be distinct and
// every one must resolve to an existing student; the first resolved
// student becomes the LEADER and the rest DEVELOPERs, in input order.
func (s *Service) Create(ctx context.Context, in CreateInput) (Team, error) {
	members, err := s.buildRoster(ctx, in.Codes)
	if err != nil {
		return Team{}, err
	}
	t := Team{
		CompetitionID:   in.CompetitionID,
		Name:            in.Name,
		Motive:          in.Motive,
		ExperienceLevel: in.ExperienceLevel,
	}
	created, err := s.store.InsertTeam(ctx, t, members)
	if err != nil {
		return Team{}, err
	}
	metrics.TeamsCreated.Inc()
	return created, nil
}

// ReplaceRoster updates a team's editable fields and swaps its entire
// roster. Validation failures leave the stored roster untouched.
func (s *Service) ReplaceRoster(ctx context.Context, teamID string, in UpdateInput) (Team, error) {
	members, err := s.buildRoster(ctx, in.Codes)
	if err != nil {
		return Team{}, err
	}
	t := Team{
		ID:              teamID,
		Name:            in.Name,
		Motive:          in.Motive,
		ExperienceLevel: in.ExperienceLevel,
	}
	return s.store.ReplaceRoster(ctx, t, members)
}

// Delete removes a team and its roster.
func (s *Service) Delete(ctx context.Context, teamID string) error {
	return s.store.DeleteTeam(ctx, teamID)
}

// SetStatus writes a new team status. WON and REJECTED also flip the
// activity flag to OFFLINE in the same update. The workflow does not
// enforce the transition graph: any known status may be written from
// any status, and gating WON/SHORTLISTED behind an uploaded certificate
// is the caller's job.
func (s *Service) SetStatus(ctx context.Context, teamID string, status Status) (Team, error) {
	if !status.Valid() {
		return Team{}, &ValidationError{Reason: "unknown team status " + string(status)}
	}
	activity := Activity("")
	if status == StatusWon || status == StatusRejected {
		activity = ActivityOffline
	}
	return s.store.UpdateStatus(ctx, teamID, status, activity)
}

// Get returns a team with roster and competition attached.
func (s *Service) Get(ctx context.Context, teamID string) (Team, error) {
	return s.store.GetByID(ctx, teamID)
}

func (s *Service) buildRoster(ctx context.Context, codes []string) ([]Member, error) {
	if len(codes) == 0 {
		return nil, &ValidationError{Reason: "member registration codes required"}
	}
	// A student sits on a roster at most once; the team_members table
	// enforces the same with a unique constraint.
	seen := make(map[string]bool, len(codes))
	var dupes []string
	for _, code := range codes {
		if seen[code] {
			dupes = append(dupes, code)
		}
		seen[code] = true
	}
	if len(dupes) > 0 {
		return nil, &ValidationError{Reason: "duplicate registration codes: " + strings.Join(dupes, ", ")}
	}
	resolved, unknown, err := s.resolver.Resolve(ctx, codes)
	if err != nil {
		return nil, err
	}
	if len(unknown) > 0 {
		metrics.RosterRejections.Inc()
		return nil, &ValidationError{Reason: "some registration codes were not found", UnknownCodes: unknown}
	}
	members := make([]Member, len(resolved))
	for i, st := range resolved {
		role := RoleDeveloper
		if i == 0 {
			role = RoleLeader
		}
		members[i] = Member{StudentID: st.ID, Role: role, Position: i}
	}
	return members, nil
}
