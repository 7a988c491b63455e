package request

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nordicsun/gooodmorning/internal/checkin"
)

// ParseCount parses a non-negative guest count from a query value.
func ParseCount(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	count, err := strconv.Atoi(value)
	if err != nil || count < 0 {
		return 0, false
	}

	return count, true
}

// ConfirmationFromQuery rebuilds the payload carried on the confirmation
// route. Missing or malformed counts read as 0; ok is false when no room
// was passed.
func ConfirmationFromQuery(query url.Values) (payload checkin.ConfirmationPayload, ok bool) {
	payload.Room = strings.TrimSpace(query.Get("room"))
	payload.Entitled, _ = ParseCount(query.Get("entitled"))
	payload.Entered, _ = ParseCount(query.Get("entered"))
	return payload, payload.Room != ""
}
