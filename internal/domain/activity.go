// Package domain defines the business logic for the activities service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when no activity matches the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity's roster.
	ErrAlreadyRegistered = errors.New("participant already registered")
)

// Activity is an extracurricular offering with a capacity and a participant roster.
// Participants holds unique emails in signup order.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// Clone returns a copy whose participant slice is independent of the receiver.
func (a Activity) Clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
