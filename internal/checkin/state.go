package checkin

import (
	"errors"
	"fmt"
)

// ErrNothingToConfirm is returned by Confirm before any room has been checked.
var ErrNothingToConfirm = errors.New("no checked room to confirm")

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaiting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaiting:
		return "awaiting_response"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the desk view state. Transitions are pure: each returns a new
// State and leaves the receiver untouched.
type State struct {
	// InFlight counts submitted check-ins that have not resolved yet.
	InFlight   int
	Response   *CheckInResponse
	GuestCount int
}

func (s State) Phase() Phase {
	if s.InFlight > 0 {
		return PhaseAwaiting
	}
	return PhaseIdle
}

// Submit marks a check-in request as in flight. The previous response stays
// visible until the new one resolves.
func (s State) Submit() State {
	s.InFlight++
	return s
}

// Resolve applies the outcome of a submitted check-in.
func (s State) Resolve(result Result) State {
	switch r := result.(type) {
	case Ok:
		return s.ResolveOk(r.Reply)
	case NetworkError:
		return s.ResolveError(r.Message)
	default:
		return s.ResolveError(UnreachableMessage)
	}
}

// ResolveOk replaces the response and recomputes the guest count from its
// entitlement.
func (s State) ResolveOk(reply CheckInResponse) State {
	s = s.settle()
	response := Ok{Reply: reply}.Response()
	s.Response = &response
	s.GuestCount = RemainingGuests(response.Entitlement)
	return s
}

// ResolveError replaces the response with an error-only one. The guest count
// is left as it was.
func (s State) ResolveError(message string) State {
	s = s.settle()
	s.Response = &CheckInResponse{Error: message}
	return s
}

// AdjustGuestCount moves the guest count by delta, never below zero.
func (s State) AdjustGuestCount(delta int) State {
	s.GuestCount = max(s.GuestCount+delta, 0)
	return s
}

// SearchByName only posts a status line; there is no guest lookup behind it.
func (s State) SearchByName(name string) State {
	s.Response = &CheckInResponse{Message: SearchingMessage(name)}
	return s
}

// Confirm builds the payload for the confirmation screen. It requires a
// response that names a room.
func (s State) Confirm() (ConfirmationPayload, error) {
	if s.Response == nil || s.Response.Room == "" {
		return ConfirmationPayload{}, ErrNothingToConfirm
	}
	return ConfirmationPayload{
		Room:     s.Response.Room,
		Entitled: s.Response.Entitled(),
		Entered:  s.GuestCount,
	}, nil
}

func (s State) settle() State {
	if s.InFlight > 0 {
		s.InFlight--
	}
	return s
}

func SearchingMessage(name string) string {
	return fmt.Sprintf(`Searching for guest "%s"...`, name)
}
