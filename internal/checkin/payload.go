package checkin

import (
	"net/url"
	"strconv"
)

// ConfirmationRoute is where a confirmed check-in navigates to.
const ConfirmationRoute = "/confirmation"

// ConfirmationPayload is handed to the confirmation screen.
type ConfirmationPayload struct {
	Room     string `json:"room"`
	Entitled int    `json:"entitled"`
	Entered  int    `json:"entered"`
}

func (p ConfirmationPayload) Query() url.Values {
	values := url.Values{}
	values.Set("room", p.Room)
	values.Set("entitled", strconv.Itoa(p.Entitled))
	values.Set("entered", strconv.Itoa(p.Entered))
	return values
}

// URL returns the confirmation route with the payload as query parameters.
func (p ConfirmationPayload) URL() string {
	return ConfirmationRoute + "?" + p.Query().Encode()
}
