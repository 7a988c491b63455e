package roomsim

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/nordicsun/gooodmorning/internal/api/apiutil"
	"github.com/nordicsun/gooodmorning/internal/checkin"
)

type RoomStore interface {
	GetRoom(ctx context.Context, number string) (Room, error)
	UpsertRoom(ctx context.Context, room Room) error
}

type errorResponse struct {
	Error string `json:"error"`
}

type roomRequest struct {
	BreakfastIncluded bool `json:"breakfast_included"`
	NumPeople         int  `json:"num_people" validate:"min=0"`
	Consumed          int  `json:"consumed" validate:"min=0"`
}

type Handlers struct {
	store    RoomStore
	validate *validator.Validate
}

func NewHandlers(store RoomStore) *Handlers {
	return &Handlers{store: store, validate: validator.New()}
}

// NewRouter wires the simulator routes.
func NewRouter(store RoomStore) *mux.Router {
	h := NewHandlers(store)

	r := mux.NewRouter()
	r.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/checkin/room", h.HandleCheckRoom).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{number}", h.HandleGetRoom).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{number}", h.HandlePutRoom).Methods(http.MethodPut)
	return r
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// POST /checkin/room
func (h *Handlers) HandleCheckRoom(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var req checkin.CheckInRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	room, err := h.store.GetRoom(r.Context(), req.RoomNumber)
	switch {
	case errors.Is(err, ErrRoomNotFound):
		logger.Info().Str("room_number", req.RoomNumber).Msg("Simulated room not found")
		writeJSON(w, r, http.StatusOK, checkin.CheckInResponse{
			Error: fmt.Sprintf("Room %s not found", req.RoomNumber),
		})
		return
	case err != nil:
		logger.Error().Err(err).Str("room_number", req.RoomNumber).Msg("Failed to look up room")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, r, http.StatusOK, checkin.CheckInResponse{
		Room:        req.RoomNumber,
		Entitlement: room.Entitlement(),
		Message:     checkin.SimulatedMessage,
	})
}

// GET /rooms/{number}
func (h *Handlers) HandleGetRoom(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	room, err := h.store.GetRoom(r.Context(), number)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			writeJSON(w, r, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("Room %s not found", number)})
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Str("room_number", number).Msg("Failed to look up room")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, r, http.StatusOK, roomResponse(room))
}

// PUT /rooms/{number}
func (h *Handlers) HandlePutRoom(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	number := NormalizeRoomNumber(mux.Vars(r)["number"])

	var req roomRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	room := Room{
		Number:            number,
		BreakfastIncluded: req.BreakfastIncluded,
		NumPeople:         req.NumPeople,
		Consumed:          req.Consumed,
	}
	if err := h.store.UpsertRoom(r.Context(), room); err != nil {
		logger.Error().Err(err).Str("room_number", number).Msg("Failed to save room")
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	logger.Info().
		Str("room_number", number).
		Bool("breakfast_included", room.BreakfastIncluded).
		Int("num_people", room.NumPeople).
		Int("consumed", room.Consumed).
		Msg("Simulated room saved")
	writeJSON(w, r, http.StatusOK, roomResponse(room))
}

func roomResponse(room Room) checkin.CheckInResponse {
	return checkin.CheckInResponse{Room: room.Number, Entitlement: room.Entitlement()}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	if err := apiutil.WriteJSON(w, status, payload); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}
