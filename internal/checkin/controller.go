package checkin

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Client talks to the room service.
type Client interface {
	CheckRoom(ctx context.Context, req CheckInRequest) (CheckInResponse, error)
}

// Controller owns the state of one front desk. It is safe for concurrent use;
// the room service call runs outside the lock, so a later submit may resolve
// first and the last resolution wins.
type Controller struct {
	client Client

	mu    sync.Mutex
	state State
}

func NewController(client Client) *Controller {
	return &Controller{client: client}
}

// State returns a snapshot of the desk state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit checks roomNumber against the room service and stores the outcome.
// Failures never surface as errors; they resolve to a NetworkError.
func (c *Controller) Submit(ctx context.Context, roomNumber string) Result {
	c.apply(State.Submit)

	result := c.checkRoom(ctx, roomNumber)
	c.apply(func(s State) State {
		return s.Resolve(result)
	})
	return result
}

func (c *Controller) AdjustGuestCount(delta int) State {
	return c.apply(func(s State) State {
		return s.AdjustGuestCount(delta)
	})
}

func (c *Controller) SearchByName(name string) State {
	return c.apply(func(s State) State {
		return s.SearchByName(name)
	})
}

// Confirm returns the payload for the confirmation screen. The desk state is
// not changed.
func (c *Controller) Confirm() (ConfirmationPayload, error) {
	return c.State().Confirm()
}

func (c *Controller) checkRoom(ctx context.Context, roomNumber string) Result {
	logger := log.Ctx(ctx)

	reply, err := c.client.CheckRoom(ctx, CheckInRequest{RoomNumber: roomNumber})
	if err != nil {
		logger.Warn().Err(err).Str("room_number", roomNumber).Msg("Room check failed")
		return NetworkError{Message: UnreachableMessage, Err: err}
	}

	logger.Debug().
		Str("room_number", roomNumber).
		Str("room", reply.Room).
		Bool("has_entitlement", reply.HasEntitlement()).
		Msg("Room check resolved")
	return Ok{Reply: reply}
}

func (c *Controller) apply(transition func(State) State) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = transition(c.state)
	return c.state
}
