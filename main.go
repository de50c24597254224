package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/cliparse"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/handlers"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/router"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/templates"
)

func main() {
	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	tmpl, err := templates.New()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	live := dcapi.NewLiveBackend(cfg.APIKey, cfg.APIBaseURL)
	sandbox := dcapi.NewSandboxBackend(cfg.APIKey, cfg.SandboxBaseURL)
	app := handlers.NewApp(cfg, tmpl, live, sandbox)

	server := http.Server{
		Handler: router.NewRouter(app),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port, "debug", cfg.Debug)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogging picks text output on a terminal and JSON otherwise, so
// production log lines stay machine-parseable.
func setupLogging(cfg cliparse.Config) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
