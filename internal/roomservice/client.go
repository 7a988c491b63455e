// Package roomservice is the HTTP client for the remote breakfast entitlement service.
package roomservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nordicsun/gooodmorning/internal/checkin"
)

const checkRoomPath = "/checkin/room"

// ErrEmptyBaseURL is returned when the client is built without a service URL.
var ErrEmptyBaseURL = errors.New("room service base URL is required")

// ErrUnexpectedStatus marks replies whose body is not a JSON check-in response.
var ErrUnexpectedStatus = errors.New("room service unexpected status")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL. A zero timeout
// leaves requests unbounded except by the caller's context.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}, nil
}

// CheckRoom posts the room number and decodes the service reply. Application
// errors come back inside the response's Error field, not as a Go error.
func (c *Client) CheckRoom(ctx context.Context, req checkin.CheckInRequest) (checkin.CheckInResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("encode check-in request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+checkRoomPath, bytes.NewReader(body))
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("build check-in request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("post check-in request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return checkin.CheckInResponse{}, fmt.Errorf("read check-in response: %w", err)
	}

	var reply checkin.CheckInResponse
	if err := json.Unmarshal(payload, &reply); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return checkin.CheckInResponse{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return checkin.CheckInResponse{}, fmt.Errorf("decode check-in response: %w", err)
	}

	return reply, nil
}
