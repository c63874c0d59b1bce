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

func newEventFixture() (*MockEventRepository, *MockTeamRepository, *MockRegistrationRepository, EventService) {
	eventRepo := new(MockEventRepository)
	teamRepo := new(MockTeamRepository)
	regRepo := new(MockRegistrationRepository)
	svc := NewEventService(eventRepo, teamRepo, regRepo)
	return eventRepo, teamRepo, regRepo, svc
}

func TestCreateEvent(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	event, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Name:                 "City Marathon",
		EventDate:            time.Now().AddDate(0, 2, 0),
		RegistrationDeadline: time.Now().AddDate(0, 1, 0),
		Fee:                  500,
		OrganizerID:          "organizer-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.Equal(t, "organizer-1", event.OrganizerID)
	assert.NotEmpty(t, event.ID)
}

func TestCreateEvent_DeadlineAfterEventDate(t *testing.T) {
	_, _, _, svc := newEventFixture()

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Name:                 "City Marathon",
		EventDate:            time.Now().AddDate(0, 1, 0),
		RegistrationDeadline: time.Now().AddDate(0, 2, 0),
	})

	assert.Error(t, err)
}

func TestGetEventForUser_RegisteredThroughManagedTeam(t *testing.T) {
	eventRepo, teamRepo, regRepo, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{ID: "event-1"}, nil)
	teamRepo.On("TeamIDsByCreator", mock.Anything, "user-1").Return([]string{"team-1"}, nil)
	regRepo.On("ExistsForEvent", mock.Anything, "event-1", "user-1", []string{"team-1"}).Return(true, nil)

	event, registered, err := svc.GetEventForUser(context.Background(), "event-1", "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.True(t, registered)
}

func TestGetEventForUser_Anonymous(t *testing.T) {
	eventRepo, _, regRepo, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{ID: "event-1"}, nil)

	_, registered, err := svc.GetEventForUser(context.Background(), "event-1", "")

	assert.NoError(t, err)
	assert.False(t, registered)
	regRepo.AssertNotCalled(t, "ExistsForEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetEvent_NotFound(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.GetEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestUpdateEvent_OwnershipEnforced(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{
		ID:          "event-1",
		OrganizerID: "organizer-1",
	}, nil)

	name := "Renamed"
	_, err := svc.UpdateEvent(context.Background(), "event-1", &dto.UpdateEventRequest{Name: &name}, "organizer-2", domain.RoleOrganizer)

	assert.ErrorIs(t, err, domain.ErrEventNotEditable)
	eventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateEvent_AdminBypassesOwnership(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{
		ID:          "event-1",
		Name:        "City Marathon",
		OrganizerID: "organizer-1",
	}, nil)
	eventRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	name := "Renamed"
	event, err := svc.UpdateEvent(context.Background(), "event-1", &dto.UpdateEventRequest{Name: &name}, "admin-1", domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", event.Name)
}

func TestDeleteEvent_OwnerAllowed(t *testing.T) {
	eventRepo, _, _, svc := newEventFixture()

	eventRepo.On("GetByID", mock.Anything, "event-1").Return(&domain.Event{
		ID:          "event-1",
		OrganizerID: "organizer-1",
	}, nil)
	eventRepo.On("Delete", mock.Anything, "event-1").Return(nil)

	err := svc.DeleteEvent(context.Background(), "event-1", "organizer-1", domain.RoleOrganizer)

	assert.NoError(t, err)
	eventRepo.AssertCalled(t, "Delete", mock.Anything, "event-1")
}
