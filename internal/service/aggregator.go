package service

import (
	"sort"
	"time"

	"github.com/sporthub/sporthub-api/internal/domain"
)

// BuildRegistrationViews joins a user's registrations with team memberships,
// teams, events and payments into an enriched per-user view.
//
// Individual registrations are those whose user_id matches the given user.
// Team registrations are those whose team_id is one of the teams the user
// belongs to. A registration carries exactly one of the two fields, so the
// union never produces duplicates.
//
// Display status is derived: once the event date has passed the entry shows
// as completed regardless of stored status, otherwise confirmed shows as
// upcoming and the stored status passes through. When the referenced event
// is missing the entry is kept with its stored status and compares by
// registration date instead of event date.
//
// Ordering: completed entries sort after everything else; within each group
// ascending by event date. The sort is stable, so runs over identical input
// produce identical output.
func BuildRegistrationViews(
	userID string,
	registrations []*domain.Registration,
	memberships []*domain.TeamMember,
	teams []*domain.Team,
	events []*domain.Event,
	payments []*domain.Payment,
	now time.Time,
) []*domain.RegistrationView {
	memberTeams := make(map[string]bool)
	for _, m := range memberships {
		if m.UserID == userID {
			memberTeams[m.TeamID] = true
		}
	}

	teamsByID := make(map[string]*domain.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}
	eventsByID := make(map[string]*domain.Event, len(events))
	for _, e := range events {
		eventsByID[e.ID] = e
	}
	paymentsByReg := make(map[string]*domain.Payment, len(payments))
	for _, p := range payments {
		paymentsByReg[p.RegistrationID] = p
	}

	views := make([]*domain.RegistrationView, 0, len(registrations))
	for _, reg := range registrations {
		var viewType domain.RegistrationType
		var teamSummary *domain.TeamSummary

		switch {
		case reg.UserID != nil && *reg.UserID == userID:
			viewType = domain.RegistrationTypeIndividual
		case reg.TeamID != nil && memberTeams[*reg.TeamID]:
			viewType = domain.RegistrationTypeTeam
			if team := teamsByID[*reg.TeamID]; team != nil {
				teamSummary = &domain.TeamSummary{ID: team.ID, Name: team.Name}
			} else {
				teamSummary = &domain.TeamSummary{ID: *reg.TeamID}
			}
		default:
			continue
		}

		view := &domain.RegistrationView{
			Registration: *reg,
			Type:         viewType,
			Team:         teamSummary,
			Event:        eventsByID[reg.EventID],
			Status:       deriveViewStatus(reg, eventsByID[reg.EventID], now),
		}
		if payment := paymentsByReg[reg.ID]; payment != nil {
			view.Payment = &domain.PaymentSummary{
				ID:     payment.ID,
				Amount: payment.Amount,
				Status: payment.Status,
			}
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		completedI := views[i].Status == domain.ViewStatusCompleted
		completedJ := views[j].Status == domain.ViewStatusCompleted
		if completedI != completedJ {
			return !completedI
		}
		return viewSortDate(views[i]).Before(viewSortDate(views[j]))
	})

	return views
}

func deriveViewStatus(reg *domain.Registration, event *domain.Event, now time.Time) string {
	if event != nil && event.Finished(now) {
		return domain.ViewStatusCompleted
	}
	if reg.Status == domain.RegistrationStatusConfirmed {
		return domain.ViewStatusUpcoming
	}
	return reg.Status
}

func viewSortDate(v *domain.RegistrationView) time.Time {
	if v.Event != nil {
		return v.Event.EventDate
	}
	return v.Registration.RegistrationDate
}
