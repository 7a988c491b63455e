package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nordicsun/gooodmorning/internal/checkin"
	"github.com/nordicsun/gooodmorning/internal/desk"
)

type stubClient struct {
	mu       sync.Mutex
	requests []checkin.CheckInRequest
	reply    checkin.CheckInResponse
	err      error
}

func (s *stubClient) CheckRoom(ctx context.Context, req checkin.CheckInRequest) (checkin.CheckInResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.reply, s.err
}

func (s *stubClient) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// deskServer routes requests the way cmd/server does, behind a desk session.
type deskServer struct {
	handler http.Handler
	cookie  *http.Cookie
}

func newDeskServer(t *testing.T, client checkin.Client) *deskServer {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /checkin", HandleCheckinPage)
	mux.HandleFunc("GET /api/v1/checkin", HandleCheckinState)
	mux.HandleFunc("POST /api/v1/checkin/room", HandleSubmitRoom)
	mux.HandleFunc("POST /api/v1/checkin/guests", HandleAdjustGuests)
	mux.HandleFunc("POST /api/v1/checkin/search", HandleSearch)
	mux.HandleFunc("POST /api/v1/checkin/confirm", HandleConfirm)

	store := desk.NewStore(client, desk.Config{CookieName: "desk_session", IdleTimeout: time.Hour})
	return &deskServer{handler: store.Middleware(mux)}
}

func (s *deskServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "desk_session" {
			s.cookie = cookie
		}
	}
	return recorder
}

func htmxForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req
}

func decodeState(t *testing.T, recorder *httptest.ResponseRecorder) stateResponse {
	t.Helper()

	var state stateResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v\n%s", err, recorder.Body.String())
	}
	return state
}

func TestHandleSubmitRoomHTMX(t *testing.T) {
	client := &stubClient{reply: checkin.CheckInResponse{
		Room:        "204",
		Entitlement: &checkin.Entitlement{BreakfastIncluded: true, NumPeople: 2, Consumed: 1},
		Message:     "Room check simulated",
	}}
	server := newDeskServer(t, client)

	recorder := server.do(t, htmxForm("/api/v1/checkin/room", url.Values{"room_number": {"204"}}))

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("HX-Trigger"); got != "dismiss-keyboard" {
		t.Fatalf("expected dismiss-keyboard trigger, got %q", got)
	}
	if client.requests[0].RoomNumber != "204" {
		t.Fatalf("unexpected room sent: %+v", client.requests)
	}

	body := recorder.Body.String()
	for _, want := range []string{"Room: 204", "Breakfast Included: Yes", "Room data received.", `id="guest-count">1<`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected fragment to contain %q, got:\n%s", want, body)
		}
	}
}

func TestHandleSubmitRoomUnreachable(t *testing.T) {
	server := newDeskServer(t, &stubClient{err: errors.New("dial tcp: connection refused")})

	recorder := server.do(t, jsonRequest(http.MethodPost, "/api/v1/checkin/room", `{"room_number":"204"}`))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected failures to render, got status %d", recorder.Code)
	}
	if got := recorder.Header().Get("HX-Trigger"); got != "dismiss-keyboard" {
		t.Fatalf("expected dismiss-keyboard trigger on failure, got %q", got)
	}

	state := decodeState(t, recorder)
	if state.Response == nil || *state.Response != (checkin.CheckInResponse{Error: "Could not reach server"}) {
		t.Fatalf("unexpected response: %+v", state.Response)
	}
	if state.Phase != "idle" {
		t.Fatalf("expected idle phase, got %s", state.Phase)
	}
}

func TestHandleAdjustGuests(t *testing.T) {
	client := &stubClient{reply: checkin.CheckInResponse{
		Room:        "204",
		Entitlement: &checkin.Entitlement{NumPeople: 1},
	}}
	server := newDeskServer(t, client)
	server.do(t, jsonRequest(http.MethodPost, "/api/v1/checkin/room", `{"room_number":"204"}`))

	steps := []struct {
		body string
		want int
	}{
		{body: `{"delta":-1}`, want: 0},
		{body: `{"delta":"-1"}`, want: 0},
		{body: `{"delta":1}`, want: 1},
		{body: `{"delta":"inc"}`, want: 2},
	}
	for _, step := range steps {
		recorder := server.do(t, jsonRequest(http.MethodPost, "/api/v1/checkin/guests", step.body))
		if recorder.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", step.body, recorder.Code)
		}
		if got := decodeState(t, recorder).GuestCount; got != step.want {
			t.Fatalf("%s: expected guest count %d, got %d", step.body, step.want, got)
		}
	}

	recorder := server.do(t, jsonRequest(http.MethodPost, "/api/v1/checkin/guests", `{"delta":5}`))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a step of 5, got %d", recorder.Code)
	}
}

func TestHandleSearchMakesNoRequest(t *testing.T) {
	client := &stubClient{}
	server := newDeskServer(t, client)

	recorder := server.do(t, htmxForm("/api/v1/checkin/search", url.Values{"guest_name": {"Smith"}}))

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Searching for guest &#34;Smith&#34;...") {
		t.Fatalf("unexpected fragment: %s", recorder.Body.String())
	}
	if client.calls() != 0 {
		t.Fatalf("expected no room service call, got %d", client.calls())
	}
}

func TestHandleConfirm(t *testing.T) {
	client := &stubClient{reply: checkin.CheckInResponse{
		Room:        "204",
		Entitlement: &checkin.Entitlement{BreakfastIncluded: true, NumPeople: 2, Consumed: 0},
	}}
	server := newDeskServer(t, client)

	recorder := server.do(t, htmxForm("/api/v1/checkin/confirm", nil))
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409 before any check, got %d", recorder.Code)
	}

	server.do(t, htmxForm("/api/v1/checkin/room", url.Values{"room_number": {"204"}}))
	server.do(t, htmxForm("/api/v1/checkin/guests", url.Values{"delta": {"-1"}}))

	recorder = server.do(t, htmxForm("/api/v1/checkin/confirm", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("HX-Redirect"); got != "/confirmation?entered=1&entitled=2&room=204" {
		t.Fatalf("unexpected redirect: %q", got)
	}

	recorder = server.do(t, jsonRequest(http.MethodPost, "/api/v1/checkin/confirm", ""))
	var payload confirmResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode confirm: %v", err)
	}
	if payload.ConfirmationPayload != (checkin.ConfirmationPayload{Room: "204", Entitled: 2, Entered: 1}) {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestHandleCheckinPageKeepsDeskState(t *testing.T) {
	client := &stubClient{reply: checkin.CheckInResponse{Room: "310"}}
	server := newDeskServer(t, client)
	server.do(t, htmxForm("/api/v1/checkin/room", url.Values{"room_number": {"310"}}))

	recorder := server.do(t, httptest.NewRequest(http.MethodGet, "/checkin", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", recorder.Code)
	}
	body := recorder.Body.String()
	for _, want := range []string{"GOOOD MORNING", "HOTEL NORDIC SUN", "Room: 310"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected page to contain %q", want)
		}
	}

	other := newDeskServer(t, client)
	if strings.Contains(other.do(t, httptest.NewRequest(http.MethodGet, "/checkin", nil)).Body.String(), "Room: 310") {
		t.Fatalf("expected a new desk to start empty")
	}
}

func TestHandlersWithoutDeskSession(t *testing.T) {
	recorder := httptest.NewRecorder()
	HandleCheckinState(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/checkin", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without desk session, got %d", recorder.Code)
	}
}
