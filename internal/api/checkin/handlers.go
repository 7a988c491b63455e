package checkin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/nordicsun/gooodmorning/internal/api/apiutil"
	"github.com/nordicsun/gooodmorning/internal/api/htmx"
	"github.com/nordicsun/gooodmorning/internal/checkin"
	"github.com/nordicsun/gooodmorning/internal/desk"
	"github.com/nordicsun/gooodmorning/internal/models"
	checkintempl "github.com/nordicsun/gooodmorning/internal/templates/components/checkin"
	"github.com/nordicsun/gooodmorning/internal/templates/layouts"
)

const pageTitle = "Goood Morning"

var theme = models.DefaultTheme()

type stateResponse struct {
	Phase      string                   `json:"phase"`
	Response   *checkin.CheckInResponse `json:"response"`
	GuestCount int                      `json:"guestCount"`
}

type confirmResponse struct {
	checkin.ConfirmationPayload
	Location string `json:"location"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(t models.Theme) {
	theme = t.Merge(models.DefaultTheme())
}

// /checkin
func HandleCheckinPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	view := checkintempl.NewResultView(controller.State())
	page := layouts.Base(pageTitle, checkintempl.Page(view), theme)
	if err := page.Render(r.Context(), w); err != nil {
		logger.Error().Err(err).Msg("Failed to render check-in page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
}

// GET /api/v1/checkin
func HandleCheckinState(w http.ResponseWriter, r *http.Request) {
	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, newStateResponse(controller.State())); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write check-in state")
	}
}

// POST /api/v1/checkin/room
func HandleSubmitRoom(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	// The keyboard goes away whatever the outcome.
	htmx.Trigger(w, htmx.DismissKeyboardEvent)

	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	roomNumber := fields["room_number"]

	result := controller.Submit(r.Context(), roomNumber)
	switch res := result.(type) {
	case checkin.Ok:
		logger.Info().
			Str("room_number", roomNumber).
			Str("room", res.Reply.Room).
			Bool("service_error", res.Reply.Error != "").
			Msg("Room checked")
	case checkin.NetworkError:
		logger.Warn().Err(res.Err).Str("room_number", roomNumber).Msg("Room service unreachable")
	}

	respond(w, r, controller.State())
}

// POST /api/v1/checkin/guests
func HandleAdjustGuests(w http.ResponseWriter, r *http.Request) {
	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	delta, err := apiutil.ParseStepField(fields["delta"], "delta")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respond(w, r, controller.AdjustGuestCount(delta))
}

// POST /api/v1/checkin/search
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	htmx.Trigger(w, htmx.DismissKeyboardEvent)

	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	respond(w, r, controller.SearchByName(fields["guest_name"]))
}

// POST /api/v1/checkin/confirm
func HandleConfirm(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	controller := controllerOrError(w, r)
	if controller == nil {
		return
	}

	payload, err := controller.Confirm()
	if err != nil {
		if errors.Is(err, checkin.ErrNothingToConfirm) {
			apiutil.WriteError(w, r, apiutil.HandlerError{
				Status:  http.StatusConflict,
				Message: "Check a room before confirming",
				Err:     err,
			})
			return
		}
		apiutil.WriteError(w, r, err)
		return
	}

	logger.Info().
		Str("room", payload.Room).
		Int("entitled", payload.Entitled).
		Int("entered", payload.Entered).
		Msg("Check-in confirmed")

	if apiutil.WantsJSON(r) && !htmx.IsRequest(r) {
		if err := apiutil.WriteJSON(w, http.StatusOK, confirmResponse{ConfirmationPayload: payload, Location: payload.URL()}); err != nil {
			logger.Error().Err(err).Msg("Failed to write confirm response")
		}
		return
	}
	htmx.Redirect(w, r, payload.URL())
}

func respond(w http.ResponseWriter, r *http.Request, state checkin.State) {
	logger := log.Ctx(r.Context())

	switch {
	case htmx.IsRequest(r):
		if err := checkintempl.Result(checkintempl.NewResultView(state)).Render(r.Context(), w); err != nil {
			logger.Error().Err(err).Msg("Failed to render check-in result")
			http.Error(w, "Failed to render result", http.StatusInternalServerError)
		}
	case apiutil.WantsJSON(r):
		if err := apiutil.WriteJSON(w, http.StatusOK, newStateResponse(state)); err != nil {
			logger.Error().Err(err).Msg("Failed to write check-in state")
		}
	default:
		http.Redirect(w, r, "/checkin", http.StatusSeeOther)
	}
}

func newStateResponse(state checkin.State) stateResponse {
	return stateResponse{
		Phase:      state.Phase().String(),
		Response:   state.Response,
		GuestCount: state.GuestCount,
	}
}

func controllerOrError(w http.ResponseWriter, r *http.Request) *checkin.Controller {
	controller := desk.ControllerFromContext(r.Context())
	if controller == nil {
		log.Ctx(r.Context()).Error().Msg("Desk session not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
	return controller
}

// decodeFields reads a flat set of string fields from a JSON or form body.
func decodeFields(r *http.Request) (map[string]string, error) {
	if !apiutil.IsJSONRequest(r) {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		fields := make(map[string]string, len(r.Form))
		for key := range r.Form {
			fields[key] = r.Form.Get(key)
		}
		return fields, nil
	}

	var raw map[string]any
	if err := apiutil.DecodeJSON(r, &raw); err != nil {
		return nil, err
	}
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
		default:
			return nil, apiutil.FieldError{Field: key, Reason: "must be a string or number"}
		}
	}
	return fields, nil
}
