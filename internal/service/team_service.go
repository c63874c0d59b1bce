package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
	"github.com/sporthub/sporthub-api/internal/repository"
)

// teamService implements TeamService
type teamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeam creates a new team managed by the caller. The manager joins
// the member list immediately so team registrations show up in their own
// registration view.
func (s *teamService) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*domain.Team, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	now := time.Now()
	team := &domain.Team{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Sport:     req.Sport,
		EventID:   req.EventID,
		CreatedBy: req.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	member := &domain.TeamMember{
		TeamID:   team.ID,
		UserID:   req.CreatedBy,
		JoinedAt: now,
	}
	if err := s.teamRepo.AddMember(ctx, member); err != nil && !errors.Is(err, domain.ErrAlreadyTeamMember) {
		return nil, err
	}

	return team, nil
}

// GetTeam retrieves a team with its members
func (s *teamService) GetTeam(ctx context.Context, id string) (*domain.Team, []*domain.TeamMember, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, domain.ErrTeamNotFound
	}

	members, err := s.teamRepo.ListMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return team, members, nil
}

// ListTeams lists teams with pagination
func (s *teamService) ListTeams(ctx context.Context, limit, offset int) ([]*domain.Team, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.teamRepo.List(ctx, limit, offset)
}

// MyTeams retrieves teams created by the caller
func (s *teamService) MyTeams(ctx context.Context, userID string) ([]*domain.Team, error) {
	return s.teamRepo.ListByManager(ctx, userID)
}

// UpdateTeam updates a team on behalf of the caller
func (s *teamService) UpdateTeam(ctx context.Context, id string, req *dto.UpdateTeamRequest, callerID string, callerRole domain.Role) (*domain.Team, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	team, err := s.authorizeManager(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Sport != nil {
		team.Sport = *req.Sport
	}
	if req.EventID != nil {
		team.EventID = req.EventID
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam deletes a team on behalf of the caller
func (s *teamService) DeleteTeam(ctx context.Context, id string, callerID string, callerRole domain.Role) error {
	if _, err := s.authorizeManager(ctx, id, callerID, callerRole); err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, id)
}

// AddMember adds a user to a team on behalf of the caller
func (s *teamService) AddMember(ctx context.Context, teamID, userID string, callerID string, callerRole domain.Role) error {
	if _, err := s.authorizeManager(ctx, teamID, callerID, callerRole); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	member := &domain.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	return s.teamRepo.AddMember(ctx, member)
}

// RemoveMember removes a user from a team on behalf of the caller. Members
// may also remove themselves.
func (s *teamService) RemoveMember(ctx context.Context, teamID, userID string, callerID string, callerRole domain.Role) error {
	if callerID != userID {
		if _, err := s.authorizeManager(ctx, teamID, callerID, callerRole); err != nil {
			return err
		}
	}
	return s.teamRepo.RemoveMember(ctx, teamID, userID)
}

func (s *teamService) authorizeManager(ctx context.Context, teamID, callerID string, callerRole domain.Role) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domain.ErrTeamNotFound
	}
	if callerRole != domain.RoleAdmin && team.CreatedBy != callerID {
		return nil, domain.ErrNotTeamManager
	}
	return team, nil
}
