// cmd/server/server.go
package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nordicsun/gooodmorning/internal/api"
	"github.com/nordicsun/gooodmorning/internal/api/checkin"
	"github.com/nordicsun/gooodmorning/internal/api/confirmation"
	"github.com/nordicsun/gooodmorning/internal/config"
	"github.com/nordicsun/gooodmorning/internal/desk"
	"github.com/nordicsun/gooodmorning/internal/models"
)

func newServer(cfg *config.Config, sessions *desk.Store) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	)

	theme := themeFromConfig(cfg)
	checkin.InitHandlers(theme)
	confirmation.InitHandlers(theme)

	// Register routes
	registerRoutes(router, sessions, cfg.App.StaticDir)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func themeFromConfig(cfg *config.Config) models.Theme {
	return models.Theme{
		HotelName:       cfg.Theme.HotelName,
		BarColor:        cfg.Theme.BarColor,
		HeadingColor:    cfg.Theme.HeadingColor,
		BackgroundColor: cfg.Theme.BackgroundColor,
	}.Merge(models.DefaultTheme())
}

func registerRoutes(mux *http.ServeMux, sessions *desk.Store, staticDir string) {
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/checkin", http.StatusSeeOther)
	})

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Check-in routes, one controller per desk session
	withDesk := func(h http.HandlerFunc) http.Handler {
		return sessions.Middleware(h)
	}
	mux.Handle("GET /checkin", withDesk(checkin.HandleCheckinPage))
	mux.Handle("GET /api/v1/checkin", withDesk(checkin.HandleCheckinState))
	mux.Handle("POST /api/v1/checkin/room", withDesk(checkin.HandleSubmitRoom))
	mux.Handle("POST /api/v1/checkin/guests", withDesk(checkin.HandleAdjustGuests))
	mux.Handle("POST /api/v1/checkin/search", withDesk(checkin.HandleSearch))
	mux.Handle("POST /api/v1/checkin/confirm", withDesk(checkin.HandleConfirm))

	mux.HandleFunc("GET /confirmation", confirmation.HandleConfirmationPage)

	// Static file handling with logging
	if staticDir == "" {
		staticDir = "static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Ctx(r.Context()).Debug().
			Str("path", r.URL.Path).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
