package entity

import (
	"errors"
	"fmt"
)

// GuestState is the position of a guest in the wish submission flow.
type GuestState string

const (
	GuestStateNotEligible GuestState = "not-eligible"
	GuestStateEligible    GuestState = "eligible"
	GuestStateSubmitting  GuestState = "submitting"
	GuestStatePosted      GuestState = "posted"
	GuestStateConflict    GuestState = "conflict"
)

// ErrInvalidGuestTransition is returned when an event does not apply to the current state.
var ErrInvalidGuestTransition = errors.New("invalid guest state transition")

// GuestSession tracks one guest viewing one invitation.
// Posted and Conflict are terminal for the lifetime of the session.
type GuestSession struct {
	InvitationID string
	GuestName    string
	NameKey      string
	State        GuestState
	Wish         *Wish // Posted or pre-existing wish, nil until known.
}

// NewGuestSession starts a session. A guest name that normalizes to an empty
// key leaves the session NotEligible, which has no outgoing transitions.
func NewGuestSession(invitationID, guestName string) *GuestSession {
	session := &GuestSession{
		InvitationID: invitationID,
		GuestName:    guestName,
		NameKey:      NormalizeNameKey(guestName),
		State:        GuestStateNotEligible,
	}
	if invitationID != "" && session.NameKey != "" {
		session.State = GuestStateEligible
	}

	return session
}

// Submit moves an eligible guest into Submitting.
func (s *GuestSession) Submit() error {
	return s.transition(GuestStateSubmitting, GuestStateEligible)
}

// Posted records a successful submission.
func (s *GuestSession) Posted(wish *Wish) error {
	if err := s.transition(GuestStatePosted, GuestStateSubmitting); err != nil {
		return err
	}
	s.Wish = wish

	return nil
}

// Conflicted records a prior wish, found either by the point lookup before the
// guest submits or by the guard at submit time. The wish may be nil when it
// could not be fetched.
func (s *GuestSession) Conflicted(existing *Wish) error {
	if err := s.transition(GuestStateConflict, GuestStateEligible, GuestStateSubmitting); err != nil {
		return err
	}
	s.Wish = existing

	return nil
}

// Failed returns a submitting guest to Eligible after a transient failure so the
// submission can be retried.
func (s *GuestSession) Failed() error {
	return s.transition(GuestStateEligible, GuestStateSubmitting)
}

// CanSubmit reports whether the submission form should be offered.
func (s *GuestSession) CanSubmit() bool {
	return s.State == GuestStateEligible
}

// IsTerminal reports whether the session reached Posted or Conflict.
func (s *GuestSession) IsTerminal() bool {
	return s.State == GuestStatePosted || s.State == GuestStateConflict
}

func (s *GuestSession) transition(to GuestState, from ...GuestState) error {
	for _, allowed := range from {
		if s.State == allowed {
			s.State = to

			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s", ErrInvalidGuestTransition, s.State, to)
}
