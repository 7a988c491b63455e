package checkin

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
)

type fakeClient struct {
	mu       sync.Mutex
	requests []CheckInRequest
	reply    CheckInResponse
	err      error
	// gate, when set, is received from before replying.
	gate chan CheckInResponse
}

func (f *fakeClient) CheckRoom(ctx context.Context, req CheckInRequest) (CheckInResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		return <-gate, nil
	}
	return f.reply, f.err
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func TestControllerSubmit(t *testing.T) {
	client := &fakeClient{reply: CheckInResponse{
		Room:        "204",
		Entitlement: &Entitlement{BreakfastIncluded: true, NumPeople: 2, Consumed: 1},
		Message:     SimulatedMessage,
	}}
	controller := NewController(client)

	result := controller.Submit(context.Background(), " 204a ")

	if _, ok := result.(Ok); !ok {
		t.Fatalf("expected Ok result, got %T", result)
	}
	if client.requests[0].RoomNumber != " 204a " {
		t.Fatalf("expected room number sent as entered, got %q", client.requests[0].RoomNumber)
	}
	if got := result.Response().Message; got != ReceivedMessage {
		t.Fatalf("expected rewritten message, got %q", got)
	}

	state := controller.State()
	if state.GuestCount != 1 {
		t.Fatalf("expected guest count 1, got %d", state.GuestCount)
	}
	if state.Phase() != PhaseIdle {
		t.Fatalf("expected idle phase, got %s", state.Phase())
	}
}

func TestControllerSubmitNetworkFailure(t *testing.T) {
	cause := errors.New("connection reset by peer")
	controller := NewController(&fakeClient{err: cause})

	result := controller.Submit(context.Background(), "204")

	netErr, ok := result.(NetworkError)
	if !ok {
		t.Fatalf("expected NetworkError result, got %T", result)
	}
	if !errors.Is(netErr, cause) {
		t.Fatalf("expected cause to be kept, got %v", netErr.Err)
	}

	want := CheckInResponse{Error: UnreachableMessage}
	if got := *controller.State().Response; got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestControllerSearchByNameMakesNoRequest(t *testing.T) {
	client := &fakeClient{}
	controller := NewController(client)

	state := controller.SearchByName("Smith")

	if state.Response.Message != `Searching for guest "Smith"...` {
		t.Fatalf("unexpected message: %q", state.Response.Message)
	}
	if client.calls() != 0 {
		t.Fatalf("expected no room service request, got %d", client.calls())
	}
}

func TestControllerConfirm(t *testing.T) {
	controller := NewController(&fakeClient{reply: CheckInResponse{
		Room:        "204",
		Entitlement: &Entitlement{BreakfastIncluded: true, NumPeople: 2},
	}})

	if _, err := controller.Confirm(); !errors.Is(err, ErrNothingToConfirm) {
		t.Fatalf("expected ErrNothingToConfirm before any check, got %v", err)
	}

	controller.Submit(context.Background(), "204")
	controller.AdjustGuestCount(-1)

	payload, err := controller.Confirm()
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if payload != (ConfirmationPayload{Room: "204", Entitled: 2, Entered: 1}) {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestControllerLastResolutionWins(t *testing.T) {
	gate := make(chan CheckInResponse)
	client := &fakeClient{gate: gate}
	controller := NewController(client)

	var wg sync.WaitGroup
	for _, room := range []string{"101", "102"} {
		wg.Add(1)
		go func(room string) {
			defer wg.Done()
			controller.Submit(context.Background(), room)
		}(room)
	}

	for client.calls() < 2 {
		runtime.Gosched()
	}
	if phase := controller.State().Phase(); phase != PhaseAwaiting {
		t.Fatalf("expected awaiting phase with requests in flight, got %s", phase)
	}

	gate <- CheckInResponse{Room: "first"}
	for controller.State().InFlight > 1 {
		runtime.Gosched()
	}
	gate <- CheckInResponse{Room: "second"}
	wg.Wait()

	state := controller.State()
	if state.Response.Room != "second" {
		t.Fatalf("expected the last resolved response to win, got %q", state.Response.Room)
	}
	if state.Phase() != PhaseIdle {
		t.Fatalf("expected idle phase once all requests resolved, got %s", state.Phase())
	}
}
