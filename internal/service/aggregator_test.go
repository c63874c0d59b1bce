package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/sporthub/sporthub-api/internal/domain"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func aggregatorFixture() ([]*domain.Registration, []*domain.TeamMember, []*domain.Team, []*domain.Event, []*domain.Payment) {
	registrations := []*domain.Registration{
		{
			ID:               "reg-1",
			EventID:          "event-1",
			UserID:           strPtr("user-3"),
			Status:           domain.RegistrationStatusConfirmed,
			RegistrationDate: date(2025, 4, 1),
		},
		{
			ID:               "reg-2",
			EventID:          "event-2",
			TeamID:           strPtr("team-1"),
			Status:           domain.RegistrationStatusConfirmed,
			RegistrationDate: date(2025, 4, 2),
		},
	}
	memberships := []*domain.TeamMember{
		{TeamID: "team-1", UserID: "user-3"},
	}
	teams := []*domain.Team{
		{ID: "team-1", Name: "Bangkok Strikers", CreatedBy: "user-7"},
	}
	events := []*domain.Event{
		{ID: "event-1", Name: "City Marathon", EventDate: date(2025, 5, 15)},
		{ID: "event-2", Name: "Football Cup", EventDate: date(2025, 6, 10)},
	}
	payments := []*domain.Payment{
		{ID: "pay-1", RegistrationID: "reg-1", Amount: 500, Status: domain.PaymentStatusCompleted},
	}
	return registrations, memberships, teams, events, payments
}

func TestBuildRegistrationViews_Empty(t *testing.T) {
	views := BuildRegistrationViews("user-1", nil, nil, nil, nil, nil, date(2025, 1, 1))
	if len(views) != 0 {
		t.Fatalf("Expected empty result, got %d entries", len(views))
	}
}

func TestBuildRegistrationViews_IndividualAndTeamBeforeEvents(t *testing.T) {
	registrations, memberships, teams, events, payments := aggregatorFixture()

	views := BuildRegistrationViews("user-3", registrations, memberships, teams, events, payments, date(2025, 5, 1))

	if len(views) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(views))
	}

	first, second := views[0], views[1]
	if first.Registration.ID != "reg-1" || second.Registration.ID != "reg-2" {
		t.Errorf("Expected order [reg-1 reg-2], got [%s %s]", first.Registration.ID, second.Registration.ID)
	}
	if first.Type != domain.RegistrationTypeIndividual {
		t.Errorf("Expected reg-1 to be individual, got %s", first.Type)
	}
	if second.Type != domain.RegistrationTypeTeam {
		t.Errorf("Expected reg-2 to be team, got %s", second.Type)
	}
	if first.Status != domain.ViewStatusUpcoming || second.Status != domain.ViewStatusUpcoming {
		t.Errorf("Expected both upcoming, got [%s %s]", first.Status, second.Status)
	}
	if first.Team != nil {
		t.Error("Individual entry must not carry team context")
	}
	if second.Team == nil || second.Team.Name != "Bangkok Strikers" {
		t.Errorf("Expected team name on team entry, got %+v", second.Team)
	}
	if first.Payment == nil || first.Payment.ID != "pay-1" {
		t.Errorf("Expected payment on reg-1, got %+v", first.Payment)
	}
	if second.Payment != nil {
		t.Errorf("Expected no payment on reg-2, got %+v", second.Payment)
	}
}

func TestBuildRegistrationViews_AfterBothEvents(t *testing.T) {
	registrations, memberships, teams, events, payments := aggregatorFixture()

	views := BuildRegistrationViews("user-3", registrations, memberships, teams, events, payments, date(2025, 6, 11))

	if len(views) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(views))
	}
	for _, v := range views {
		if v.Status != domain.ViewStatusCompleted {
			t.Errorf("Expected completed status for %s, got %s", v.Registration.ID, v.Status)
		}
	}
}

func TestBuildRegistrationViews_CompletedSortsLast(t *testing.T) {
	registrations, memberships, teams, events, payments := aggregatorFixture()

	// Between the two event dates: event-1 is past, event-2 still upcoming
	views := BuildRegistrationViews("user-3", registrations, memberships, teams, events, payments, date(2025, 6, 1))

	if len(views) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(views))
	}
	if views[0].Registration.ID != "reg-2" {
		t.Errorf("Expected upcoming entry first, got %s", views[0].Registration.ID)
	}
	if views[0].Status != domain.ViewStatusUpcoming {
		t.Errorf("Expected upcoming, got %s", views[0].Status)
	}
	if views[1].Status != domain.ViewStatusCompleted {
		t.Errorf("Expected completed, got %s", views[1].Status)
	}
}

func TestBuildRegistrationViews_RemovedMemberExcluded(t *testing.T) {
	registrations, _, teams, events, payments := aggregatorFixture()

	// user-3 no longer belongs to team-1
	views := BuildRegistrationViews("user-3", registrations, nil, teams, events, payments, date(2025, 5, 1))

	if len(views) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(views))
	}
	if views[0].Registration.ID != "reg-1" {
		t.Errorf("Expected only the individual entry, got %s", views[0].Registration.ID)
	}
}

func TestBuildRegistrationViews_OtherUsersExcluded(t *testing.T) {
	registrations, memberships, teams, events, payments := aggregatorFixture()

	views := BuildRegistrationViews("user-9", registrations, memberships, teams, events, payments, date(2025, 5, 1))

	if len(views) != 0 {
		t.Fatalf("Expected no entries for unrelated user, got %d", len(views))
	}
}

func TestBuildRegistrationViews_Idempotent(t *testing.T) {
	registrations, memberships, teams, events, payments := aggregatorFixture()
	now := date(2025, 7, 1)

	first := BuildRegistrationViews("user-3", registrations, memberships, teams, events, payments, now)
	second := BuildRegistrationViews("user-3", registrations, memberships, teams, events, payments, now)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output across runs with identical input")
	}
}

func TestBuildRegistrationViews_DanglingEvent(t *testing.T) {
	registrations := []*domain.Registration{
		{
			ID:               "reg-1",
			EventID:          "missing-event",
			UserID:           strPtr("user-3"),
			Status:           domain.RegistrationStatusPending,
			RegistrationDate: date(2025, 4, 1),
		},
	}

	views := BuildRegistrationViews("user-3", registrations, nil, nil, nil, nil, date(2025, 5, 1))

	if len(views) != 1 {
		t.Fatalf("Expected dangling entry to be kept, got %d entries", len(views))
	}
	if views[0].Event != nil {
		t.Error("Expected nil event on dangling entry")
	}
	// Missing event means the date comparison cannot run, so the stored
	// status passes through
	if views[0].Status != domain.RegistrationStatusPending {
		t.Errorf("Expected stored status pending, got %s", views[0].Status)
	}
}

func TestBuildRegistrationViews_MissingTeamRecord(t *testing.T) {
	registrations := []*domain.Registration{
		{
			ID:               "reg-1",
			EventID:          "event-1",
			TeamID:           strPtr("team-9"),
			Status:           domain.RegistrationStatusConfirmed,
			RegistrationDate: date(2025, 4, 1),
		},
	}
	memberships := []*domain.TeamMember{{TeamID: "team-9", UserID: "user-3"}}
	events := []*domain.Event{{ID: "event-1", EventDate: date(2025, 5, 15)}}

	views := BuildRegistrationViews("user-3", registrations, memberships, nil, events, nil, date(2025, 5, 1))

	if len(views) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(views))
	}
	if views[0].Team == nil || views[0].Team.ID != "team-9" || views[0].Team.Name != "" {
		t.Errorf("Expected team summary with id only, got %+v", views[0].Team)
	}
}

func TestDeriveViewStatus(t *testing.T) {
	event := &domain.Event{ID: "event-1", EventDate: date(2025, 5, 15)}

	tests := []struct {
		name   string
		status string
		event  *domain.Event
		now    time.Time
		want   string
	}{
		{"confirmed before event", domain.RegistrationStatusConfirmed, event, date(2025, 5, 1), domain.ViewStatusUpcoming},
		{"pending before event", domain.RegistrationStatusPending, event, date(2025, 5, 1), domain.RegistrationStatusPending},
		{"cancelled before event", domain.RegistrationStatusCancelled, event, date(2025, 5, 1), domain.RegistrationStatusCancelled},
		{"confirmed on event day", domain.RegistrationStatusConfirmed, event, date(2025, 5, 15), domain.ViewStatusUpcoming},
		{"confirmed after event", domain.RegistrationStatusConfirmed, event, date(2025, 5, 16), domain.ViewStatusCompleted},
		{"pending after event", domain.RegistrationStatusPending, event, date(2025, 5, 16), domain.ViewStatusCompleted},
		{"missing event", domain.RegistrationStatusConfirmed, nil, date(2025, 5, 16), domain.ViewStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &domain.Registration{Status: tt.status}
			got := deriveViewStatus(reg, tt.event, tt.now)
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
