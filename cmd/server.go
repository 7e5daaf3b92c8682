//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"bitbucket.org/planbgroup/booking-notifier/internal/ledger"
	"bitbucket.org/planbgroup/booking-notifier/internal/notifier"
	"bitbucket.org/planbgroup/booking-notifier/internal/simplybook"
	"bitbucket.org/planbgroup/booking-notifier/internal/tools/redisfactory"
	"bitbucket.org/planbgroup/booking-notifier/internal/twilio"
	"bitbucket.org/planbgroup/booking-notifier/internal/web"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func newLogger(level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &logger
}

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")
	log := newLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	redisFactory := redisfactory.New(cfg.LedgerRedisURI)

	var notified *ledger.Ledger
	if client := redisFactory.LedgerClient(); client != nil {
		notified = ledger.New(client, cfg.LedgerTTL)
	}

	scheduling := simplybook.New(cfg, log)
	messenger := twilio.New(cfg, log)
	dispatcher := notifier.NewDispatcher(messenger, cfg.MessagingFrom, cfg.MessagingMediaURL, cfg.ReminderHours)
	service := notifier.NewService(cfg, scheduling, dispatcher, notified)

	appRouter := web.SetupRouter(log, service, cfg)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, os.Getenv("PORT")),
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}
