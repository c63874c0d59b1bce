package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventRegistrationOpen(t *testing.T) {
	event := &Event{RegistrationDeadline: day(2025, 5, 10)}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before deadline", day(2025, 4, 1), true},
		{"day before deadline", day(2025, 5, 9), true},
		{"on deadline day", day(2025, 5, 10), true},
		{"late on deadline day", time.Date(2025, 5, 10, 23, 59, 0, 0, time.UTC), true},
		{"day after deadline", day(2025, 5, 11), false},
		{"long after deadline", day(2025, 6, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := event.RegistrationOpen(tt.now); got != tt.want {
				t.Errorf("RegistrationOpen(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestEventFinished(t *testing.T) {
	event := &Event{EventDate: day(2025, 5, 15)}

	if event.Finished(day(2025, 5, 15)) {
		t.Error("Event day itself is not finished")
	}
	if !event.Finished(day(2025, 5, 16)) {
		t.Error("Day after event date is finished")
	}
	if event.Finished(day(2025, 5, 1)) {
		t.Error("Before event date is not finished")
	}
}

func TestRoleCanManageEvents(t *testing.T) {
	if !RoleAdmin.CanManageEvents() || !RoleOrganizer.CanManageEvents() {
		t.Error("Admin and organizer can manage events")
	}
	if RoleParticipant.CanManageEvents() || RoleTeamManager.CanManageEvents() {
		t.Error("Participant and team manager cannot manage events")
	}
}
