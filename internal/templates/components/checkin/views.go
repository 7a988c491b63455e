package checkin

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const (
	ResultElementID = "checkin-result"
	resultTarget    = "#" + ResultElementID

	SubmitRoomPath  = "/api/v1/checkin/room"
	SearchPath      = "/api/v1/checkin/search"
	AdjustGuestPath = "/api/v1/checkin/guests"
	ConfirmPath     = "/api/v1/checkin/confirm"
)

// Page is the front desk check-in screen.
func Page(result ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="heading">GOOOD MORNING</h1>`+
			`<p class="greeting">Welcome! Tap below to check in guest.</p>`+
			`<form class="row" hx-post="`+SubmitRoomPath+`" hx-target="`+resultTarget+`" hx-swap="outerHTML">`+
			`<input name="room_number" placeholder="ROOM NUMBER" inputmode="numeric" autocapitalize="characters" autocomplete="off" oninput="this.value=this.value.toUpperCase()">`+
			`<button type="submit" class="action">CHECK</button></form>`+
			`<form class="row" hx-post="`+SearchPath+`" hx-target="`+resultTarget+`" hx-swap="outerHTML">`+
			`<input name="guest_name" placeholder="SEARCH LAST NAME" autocapitalize="words" autocomplete="off">`+
			`<button type="submit" class="action">SEARCH</button></form>`); err != nil {
			return err
		}
		return Result(result).Render(ctx, w)
	})
}

// Result renders the result card and, when the room has an entitlement, the
// guest counter. It is the swap target for every desk action.
func Result(view ResultView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+ResultElementID+`">`); err != nil {
			return err
		}

		if view.HasResponse {
			if _, err := io.WriteString(w, `<div class="result">`+
				`<p>Room: `+templ.EscapeString(view.Room)+`</p>`+
				`<p>Breakfast Included: `+view.BreakfastLabel()+`</p>`+
				`<p>People Entitled: `+templ.EscapeString(view.PeopleEntitled)+`</p>`+
				`<p class="status">`+templ.EscapeString(view.Status)+`</p>`+
				`</div>`); err != nil {
				return err
			}
		}

		if view.ShowGuestPicker {
			if err := guestPicker(view.GuestCount).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func guestPicker(count int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="guest-selector">`+
			`<p>Guests now arriving:</p>`+
			`<div class="counter-row">`+
			`<button type="button" class="counter" aria-label="Fewer guests" hx-post="`+AdjustGuestPath+`" hx-vals='{"delta":"-1"}' hx-target="`+resultTarget+`" hx-swap="outerHTML">&ndash;</button>`+
			`<div class="circle" id="guest-count">`+strconv.Itoa(count)+`</div>`+
			`<button type="button" class="counter" aria-label="More guests" hx-post="`+AdjustGuestPath+`" hx-vals='{"delta":"1"}' hx-target="`+resultTarget+`" hx-swap="outerHTML">+</button>`+
			`</div>`+
			`<button type="button" class="action" hx-post="`+ConfirmPath+`" hx-target="`+resultTarget+`" hx-swap="outerHTML">CONFIRM</button>`+
			`</div>`)
		return err
	})
}

// Confirmation is the screen shown after the desk confirms the guest count.
func Confirmation(view ConfirmationView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<h1 class="heading">ENJOY BREAKFAST</h1>`+
			`<div class="result">`+
			`<p>Room: `+templ.EscapeString(view.Room)+`</p>`+
			`<p>People Entitled: `+strconv.Itoa(view.Entitled)+`</p>`+
			`<p>Guests Entered: `+strconv.Itoa(view.Entered)+`</p>`+
			`<p class="status">`+templ.EscapeString(view.GuestLabel())+` checked in.</p>`+
			`</div>`+
			`<div class="row"><a class="action" href="/checkin" style="text-align:center;text-decoration:none">NEXT GUEST</a></div>`)
		return err
	})
}
