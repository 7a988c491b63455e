package confirmation

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nordicsun/gooodmorning/internal/models"
	"github.com/nordicsun/gooodmorning/internal/request"
	checkintempl "github.com/nordicsun/gooodmorning/internal/templates/components/checkin"
	"github.com/nordicsun/gooodmorning/internal/templates/layouts"
)

var theme = models.DefaultTheme()

func InitHandlers(t models.Theme) {
	theme = t.Merge(models.DefaultTheme())
}

// /confirmation?room=...&entitled=...&entered=...
func HandleConfirmationPage(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	payload, ok := request.ConfirmationFromQuery(r.URL.Query())
	if !ok {
		logger.Warn().Str("query", r.URL.RawQuery).Msg("Confirmation opened without a room")
	}

	page := layouts.Base("Confirmed", checkintempl.Confirmation(checkintempl.NewConfirmationView(payload, ok)), theme)
	if err := page.Render(r.Context(), w); err != nil {
		logger.Error().Err(err).Msg("Failed to render confirmation page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
}
