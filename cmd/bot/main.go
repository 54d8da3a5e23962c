package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ThatOhio/NHL-Bot/internal/bot"
	"github.com/ThatOhio/NHL-Bot/internal/config"
	"github.com/ThatOhio/NHL-Bot/internal/espn"
	"github.com/ThatOhio/NHL-Bot/internal/logging"
	"github.com/ThatOhio/NHL-Bot/internal/metrics"
	"github.com/ThatOhio/NHL-Bot/internal/nhl"
	"github.com/ThatOhio/NHL-Bot/internal/ops"
	"github.com/ThatOhio/NHL-Bot/internal/render"
	"github.com/ThatOhio/NHL-Bot/internal/roster"
)

const appVersion = "dev"

func main() {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nhl-bot",
		Version: appVersion,
	})

	if cfg.DiscordToken == "" {
		logging.Error(logger, "DISCORD_TOKEN is not set", nil)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)
	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: metrics.NewInstrumentedTransport(http.DefaultTransport, recorder),
	}

	nhlClient := nhl.NewClient(nhl.Config{
		BaseURL:    cfg.NHLBaseURL,
		HTTPClient: httpClient,
	})
	espnClient := espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPNBaseURL,
		HTTPClient: httpClient,
	})

	rosterCache := roster.NewCache(nhlClient, logger, roster.WithMaxAge(cfg.RosterMaxAge))
	renderer := render.New(nhlClient, logger)

	if cfg.OpsEnabled {
		go ops.NewServer(cfg.OpsAddr, logger, registry).Run(ctx)
	}

	b, err := bot.New(cfg, bot.Deps{
		NHL:        nhlClient,
		Search:     rosterCache,
		Renderer:   renderer,
		Scoreboard: espnClient,
	}, logger, recorder)
	if err != nil {
		logging.Error(logger, "bot setup failed", err)
		os.Exit(1)
	}

	if err := b.Run(ctx); err != nil {
		logging.Error(logger, "bot stopped", err)
		os.Exit(1)
	}
	logging.Info(logger, "shutdown complete")
}
