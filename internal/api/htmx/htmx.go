package htmx

import (
	"net/http"
	"strings"
)

// DismissKeyboardEvent tells the page to blur the focused input so the
// on-screen keyboard closes.
const DismissKeyboardEvent = "dismiss-keyboard"

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// Trigger asks htmx to fire a client-side event once the response arrives.
func Trigger(w http.ResponseWriter, event string) {
	w.Header().Set("HX-Trigger", event)
}

// Redirect navigates the browser. htmx requests get an HX-Redirect header,
// plain requests a 303.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsRequest(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
