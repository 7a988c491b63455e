package checkin

const (
	// SimulatedMessage is what the room service reports when it answers from simulated data.
	SimulatedMessage = "Room check simulated"
	// ReceivedMessage replaces SimulatedMessage before it reaches the desk.
	ReceivedMessage = "Room data received."
	// UnreachableMessage is shown for every transport or decode failure.
	UnreachableMessage = "Could not reach server"
)

// CheckInRequest is the body sent to the room service. RoomNumber is the raw
// text entered at the desk.
type CheckInRequest struct {
	RoomNumber string `json:"room_number"`
}

// Entitlement is the breakfast allowance of a room for the current stay.
type Entitlement struct {
	BreakfastIncluded bool `json:"breakfast_included"`
	NumPeople         int  `json:"num_people"`
	Consumed          int  `json:"consumed,omitempty"`
}

// CheckInResponse mirrors the room service reply. Every field is optional.
type CheckInResponse struct {
	Room        string       `json:"room,omitempty"`
	Entitlement *Entitlement `json:"entitlement,omitempty"`
	Message     string       `json:"message,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Entitled returns the number of guests the room may bring to breakfast,
// or 0 when the response carries no entitlement.
func (r CheckInResponse) Entitled() int {
	if r.Entitlement == nil {
		return 0
	}
	return r.Entitlement.NumPeople
}

// HasEntitlement reports whether the guest counter applies to this response.
func (r CheckInResponse) HasEntitlement() bool {
	return r.Entitlement != nil
}

// StatusText is the line shown under the result card: the message when
// present, otherwise the error.
func (r CheckInResponse) StatusText() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}

// RemainingGuests derives the default guest count for an entitlement.
func RemainingGuests(e *Entitlement) int {
	if e == nil {
		return 0
	}
	return max(e.NumPeople-e.Consumed, 0)
}

// NormalizeMessage rewrites the simulated-data sentinel into the desk wording.
// Any other message is returned unchanged.
func NormalizeMessage(message string) string {
	if message == SimulatedMessage {
		return ReceivedMessage
	}
	return message
}
