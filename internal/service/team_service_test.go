package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
)

func newTeamFixture() (*MockTeamRepository, *MockUserRepository, TeamService) {
	teamRepo := new(MockTeamRepository)
	userRepo := new(MockUserRepository)
	svc := NewTeamService(teamRepo, userRepo)
	return teamRepo, userRepo, svc
}

func TestCreateTeam_ManagerJoinsAsMember(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(nil)
	teamRepo.On("AddMember", mock.Anything, mock.MatchedBy(func(m *domain.TeamMember) bool {
		return m.UserID == "manager-1"
	})).Return(nil)

	team, err := svc.CreateTeam(context.Background(), &dto.CreateTeamRequest{
		Name:      "Bangkok Strikers",
		Sport:     "Football",
		CreatedBy: "manager-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "manager-1", team.CreatedBy)
	teamRepo.AssertCalled(t, "AddMember", mock.Anything, mock.AnythingOfType("*domain.TeamMember"))
}

func TestCreateTeam_EmptyName(t *testing.T) {
	_, _, svc := newTeamFixture()

	_, err := svc.CreateTeam(context.Background(), &dto.CreateTeamRequest{
		Name:      "   ",
		CreatedBy: "manager-1",
	})

	assert.Error(t, err)
}

func TestGetTeam_NotFound(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("GetByID", mock.Anything, "missing").Return((*domain.Team)(nil), nil)

	_, _, err := svc.GetTeam(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestUpdateTeam_ForeignCallerRejected(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "manager-1"}, nil)

	name := "Renamed"
	_, err := svc.UpdateTeam(context.Background(), "team-1", &dto.UpdateTeamRequest{Name: &name},
		"intruder", domain.RoleTeamManager)

	assert.ErrorIs(t, err, domain.ErrNotTeamManager)
	teamRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTeam_AdminBypassesOwnership(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "manager-1", Name: "Old"}, nil)
	teamRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(nil)

	name := "Renamed"
	team, err := svc.UpdateTeam(context.Background(), "team-1", &dto.UpdateTeamRequest{Name: &name},
		"admin-1", domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", team.Name)
}

func TestAddMember_UnknownUser(t *testing.T) {
	teamRepo, userRepo, svc := newTeamFixture()

	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "manager-1"}, nil)
	userRepo.On("GetByID", mock.Anything, "ghost").Return((*domain.User)(nil), nil)

	err := svc.AddMember(context.Background(), "team-1", "ghost", "manager-1", domain.RoleTeamManager)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRemoveMember_SelfRemovalSkipsManagerCheck(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("RemoveMember", mock.Anything, "team-1", "user-1").Return(nil)

	err := svc.RemoveMember(context.Background(), "team-1", "user-1", "user-1", domain.RoleParticipant)

	assert.NoError(t, err)
	teamRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRemoveMember_ForeignCallerRejected(t *testing.T) {
	teamRepo, _, svc := newTeamFixture()

	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "manager-1"}, nil)

	err := svc.RemoveMember(context.Background(), "team-1", "user-1", "user-2", domain.RoleParticipant)

	assert.ErrorIs(t, err, domain.ErrNotTeamManager)
}
