package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sporthub/sporthub-api/internal/domain"
	"github.com/sporthub/sporthub-api/internal/dto"
)

func openEvent() *domain.Event {
	return &domain.Event{
		ID:                   "event-1",
		Name:                 "City Marathon",
		Fee:                  500,
		EventDate:            time.Now().AddDate(0, 1, 0),
		RegistrationDeadline: time.Now().AddDate(0, 0, 14),
		Status:               domain.EventStatusUpcoming,
	}
}

func newRegistrationFixture() (*MockRegistrationRepository, *MockEventRepository, *MockTeamRepository, *MockPaymentRepository, RegistrationService) {
	regRepo := new(MockRegistrationRepository)
	eventRepo := new(MockEventRepository)
	teamRepo := new(MockTeamRepository)
	paymentRepo := new(MockPaymentRepository)
	svc := NewRegistrationService(regRepo, eventRepo, teamRepo, paymentRepo)
	return regRepo, eventRepo, teamRepo, paymentRepo, svc
}

func TestRegister_Individual(t *testing.T) {
	regRepo, eventRepo, teamRepo, _, svc := newRegistrationFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(openEvent(), nil)
	teamRepo.On("TeamIDsByMember", mock.Anything, "user-1").Return([]string{}, nil)
	teamRepo.On("TeamIDsByCreator", mock.Anything, "user-1").Return([]string{}, nil)
	regRepo.On("ExistsForEvent", mock.Anything, "event-1", "user-1", mock.Anything).Return(false, nil)
	regRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Registration")).Return(nil)

	reg, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		UserID:  "user-1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, reg)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.NotNil(t, reg.UserID)
	assert.Equal(t, "user-1", *reg.UserID)
	assert.Nil(t, reg.TeamID)
	regRepo.AssertExpectations(t)
}

func TestRegister_TeamSetsTeamOnly(t *testing.T) {
	regRepo, eventRepo, teamRepo, _, svc := newRegistrationFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(openEvent(), nil)
	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "user-1"}, nil)
	teamRepo.On("TeamIDsByMember", mock.Anything, "user-1").Return([]string{"team-1"}, nil)
	teamRepo.On("TeamIDsByCreator", mock.Anything, "user-1").Return([]string{"team-1"}, nil)
	regRepo.On("ExistsForEvent", mock.Anything, "event-1", "user-1", mock.Anything).Return(false, nil)
	regRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Registration")).Return(nil)

	reg, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		TeamID:  "team-1",
		UserID:  "user-1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, reg.TeamID)
	assert.Equal(t, "team-1", *reg.TeamID)
	assert.Nil(t, reg.UserID, "team registration must not carry a user id")
}

func TestRegister_Duplicate(t *testing.T) {
	regRepo, eventRepo, teamRepo, _, svc := newRegistrationFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(openEvent(), nil)
	teamRepo.On("TeamIDsByMember", mock.Anything, "user-1").Return([]string{"team-1"}, nil)
	teamRepo.On("TeamIDsByCreator", mock.Anything, "user-1").Return([]string{}, nil)
	regRepo.On("ExistsForEvent", mock.Anything, "event-1", "user-1", mock.Anything).Return(true, nil)

	_, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		UserID:  "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	regRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DeadlinePassed(t *testing.T) {
	_, eventRepo, _, _, svc := newRegistrationFixture()

	event := openEvent()
	event.RegistrationDeadline = time.Now().AddDate(0, 0, -2)
	eventRepo.On("GetByID", mock.Anything, "event-1").Return(event, nil)

	_, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		UserID:  "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegister_EventFull(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationFixture()

	event := openEvent()
	event.MaxParticipants = 2
	eventRepo.On("GetByID", mock.Anything, "event-1").Return(event, nil)
	regRepo.On("CountByEvent", mock.Anything, "event-1").Return(int64(2), nil)

	_, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		UserID:  "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegister_TeamNotManagedByCaller(t *testing.T) {
	_, eventRepo, teamRepo, _, svc := newRegistrationFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(openEvent(), nil)
	teamRepo.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", CreatedBy: "someone-else"}, nil)

	_, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "event-1",
		TeamID:  "team-1",
		UserID:  "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrNotTeamManager)
}

func TestRegister_EventNotFound(t *testing.T) {
	_, eventRepo, _, _, svc := newRegistrationFixture()

	eventRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Register(context.Background(), &dto.CreateRegistrationRequest{
		EventID: "missing",
		UserID:  "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestMyRegistrations_Empty(t *testing.T) {
	regRepo, _, teamRepo, _, svc := newRegistrationFixture()

	regRepo.On("ListByUser", mock.Anything, "user-1").Return([]*domain.Registration{}, nil)
	teamRepo.On("TeamIDsByMember", mock.Anything, "user-1").Return([]string{}, nil)
	regRepo.On("ListByTeamIDs", mock.Anything, []string{}).Return([]*domain.Registration{}, nil)

	views, err := svc.MyRegistrations(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Empty(t, views)
}

func TestMyRegistrations_MergesIndividualAndTeam(t *testing.T) {
	regRepo, eventRepo, teamRepo, paymentRepo, svc := newRegistrationFixture()

	userID := "user-3"
	individual := []*domain.Registration{{
		ID:      "reg-1",
		EventID: "event-1",
		UserID:  &userID,
		Status:  domain.RegistrationStatusConfirmed,
	}}
	teamID := "team-1"
	teamRegs := []*domain.Registration{{
		ID:      "reg-2",
		EventID: "event-2",
		TeamID:  &teamID,
		Status:  domain.RegistrationStatusConfirmed,
	}}

	regRepo.On("ListByUser", mock.Anything, userID).Return(individual, nil)
	teamRepo.On("TeamIDsByMember", mock.Anything, userID).Return([]string{"team-1"}, nil)
	regRepo.On("ListByTeamIDs", mock.Anything, []string{"team-1"}).Return(teamRegs, nil)
	teamRepo.On("GetByIDs", mock.Anything, []string{"team-1"}).Return([]*domain.Team{{ID: "team-1", Name: "Strikers"}}, nil)
	eventRepo.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Event{
		{ID: "event-1", EventDate: time.Now().AddDate(0, 1, 0)},
		{ID: "event-2", EventDate: time.Now().AddDate(0, 2, 0)},
	}, nil)
	paymentRepo.On("ListByRegistrationIDs", mock.Anything, mock.Anything).Return([]*domain.Payment{}, nil)

	views, err := svc.MyRegistrations(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, domain.RegistrationTypeIndividual, views[0].Type)
	assert.Equal(t, domain.RegistrationTypeTeam, views[1].Type)
	assert.Equal(t, domain.ViewStatusUpcoming, views[0].Status)
}

func TestUpdateStatus_OrganizerOwnsEvent(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationFixture()

	userID := "user-1"
	regRepo.On("GetByID", mock.Anything, "reg-1").Return(&domain.Registration{
		ID:      "reg-1",
		EventID: "event-1",
		UserID:  &userID,
		Status:  domain.RegistrationStatusPending,
	}, nil)
	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{
		ID:          "event-1",
		OrganizerID: "organizer-1",
	}, nil)
	regRepo.On("UpdateStatus", mock.Anything, "reg-1", domain.RegistrationStatusConfirmed).Return(nil)

	reg, err := svc.UpdateStatus(context.Background(), "reg-1", domain.RegistrationStatusConfirmed, "organizer-1", domain.RoleOrganizer)

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)
}

func TestUpdateStatus_ForeignOrganizerRejected(t *testing.T) {
	regRepo, eventRepo, _, _, svc := newRegistrationFixture()

	userID := "user-1"
	regRepo.On("GetByID", mock.Anything, "reg-1").Return(&domain.Registration{
		ID:      "reg-1",
		EventID: "event-1",
		UserID:  &userID,
	}, nil)
	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{
		ID:          "event-1",
		OrganizerID: "organizer-1",
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), "reg-1", domain.RegistrationStatusConfirmed, "organizer-2", domain.RoleOrganizer)

	assert.ErrorIs(t, err, domain.ErrEventNotEditable)
	regRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
