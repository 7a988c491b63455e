package checkin

import (
	"strconv"

	"github.com/nordicsun/gooodmorning/internal/checkin"
)

const notAvailable = "N/A"

// ResultView is the result card and guest counter for one desk state.
type ResultView struct {
	HasResponse       bool
	Room              string
	BreakfastIncluded bool
	// PeopleEntitled is blank when the response has no entitlement.
	PeopleEntitled  string
	Status          string
	ShowGuestPicker bool
	GuestCount      int
	Awaiting        bool
}

func NewResultView(state checkin.State) ResultView {
	view := ResultView{
		GuestCount: state.GuestCount,
		Awaiting:   state.Phase() == checkin.PhaseAwaiting,
	}
	if state.Response == nil {
		return view
	}

	response := *state.Response
	view.HasResponse = true
	view.Room = response.Room
	if view.Room == "" {
		view.Room = notAvailable
	}
	view.Status = response.StatusText()
	if response.Entitlement != nil {
		view.BreakfastIncluded = response.Entitlement.BreakfastIncluded
		view.PeopleEntitled = strconv.Itoa(response.Entitlement.NumPeople)
		view.ShowGuestPicker = true
	}
	return view
}

func (v ResultView) BreakfastLabel() string {
	if v.BreakfastIncluded {
		return "Yes"
	}
	return "No"
}

// ConfirmationView is what the confirmation screen shows.
type ConfirmationView struct {
	Room     string
	Entitled int
	Entered  int
	HasRoom  bool
}

func NewConfirmationView(payload checkin.ConfirmationPayload, hasRoom bool) ConfirmationView {
	room := payload.Room
	if !hasRoom {
		room = notAvailable
	}
	return ConfirmationView{
		Room:     room,
		Entitled: payload.Entitled,
		Entered:  payload.Entered,
		HasRoom:  hasRoom,
	}
}

func (v ConfirmationView) GuestLabel() string {
	if v.Entered == 1 {
		return "1 guest"
	}
	return strconv.Itoa(v.Entered) + " guests"
}
