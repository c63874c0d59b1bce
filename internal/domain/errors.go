package domain

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Event errors
	ErrEventNotFound      = errors.New("event not found")
	ErrRegistrationClosed = errors.New("registration deadline has passed")
	ErrEventFull          = errors.New("event has reached its participant limit")
	ErrEventNotEditable   = errors.New("event can only be modified by its organizer or an admin")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrNotTeamManager    = errors.New("team can only be modified by its manager or an admin")
	ErrAlreadyTeamMember = errors.New("user is already a member of this team")
	ErrNotTeamMember     = errors.New("user is not a member of this team")

	// Registration errors
	ErrRegistrationNotFound      = errors.New("registration not found")
	ErrAlreadyRegistered         = errors.New("already registered for this event")
	ErrInvalidRegistrationTarget = errors.New("registration must reference exactly one of user or team")

	// Payment errors
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentAlreadyMade = errors.New("registration already has a completed payment")
	ErrPaymentDeclined    = errors.New("payment was declined")

	// Feedback and result errors
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrResultNotFound   = errors.New("result not found")
)

// IsNotFoundError reports whether err is one of the not-found sentinels
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrRegistrationNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrFeedbackNotFound) ||
		errors.Is(err, ErrResultNotFound)
}

// IsConflictError reports whether err represents a state conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrEventFull) ||
		errors.Is(err, ErrAlreadyTeamMember) ||
		errors.Is(err, ErrPaymentAlreadyMade)
}

// IsForbiddenError reports whether err represents a permission failure
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrEventNotEditable) ||
		errors.Is(err, ErrNotTeamManager)
}
