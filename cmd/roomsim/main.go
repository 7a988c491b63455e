// cmd/roomsim/main.go
//
// roomsim stands in for the breakfast entitlement service during local
// development.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nordicsun/gooodmorning/internal/api"
	"github.com/nordicsun/gooodmorning/internal/config"
	"github.com/nordicsun/gooodmorning/internal/db"
	"github.com/nordicsun/gooodmorning/internal/roomsim"
)

func main() {
	configPath := flag.String("config", "config/app.yaml", "path to config file")
	seedPath := flag.String("seed", "", "room fixture file (overrides simulator.seed_file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("Failed to load configuration")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.App.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	database, err := db.NewFromConfig(cfg.Simulator.Database)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Simulator.Database.Filename).Msg("Failed to open database")
	}
	defer database.Close()

	store := roomsim.NewStore(database)

	seedFile := cfg.Simulator.SeedFile
	if *seedPath != "" {
		seedFile = *seedPath
	}
	if seedFile != "" {
		if err := seed(store, seedFile); err != nil {
			log.Fatal().Err(err).Str("seed_file", seedFile).Msg("Failed to seed rooms")
		}
	}

	server := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.Simulator.Port),
		Handler: api.ChainMiddleware(
			roomsim.NewRouter(store),
			api.WithLogging,
			api.WithRecovery,
			api.WithRequestID,
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("Starting room service simulator")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down room service simulator")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Simulator terminated with error")
		os.Exit(1)
	}
}

func seed(store *roomsim.Store, path string) error {
	rooms, err := roomsim.LoadSeed(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := store.Seed(ctx, rooms); err != nil {
		return err
	}
	log.Info().Int("rooms", len(rooms)).Str("seed_file", path).Msg("Rooms seeded")
	return nil
}
