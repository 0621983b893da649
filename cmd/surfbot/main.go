package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/bot"
	"github.com/surfwatch/surfbot/internal/commute"
	"github.com/surfwatch/surfbot/internal/config"
	"github.com/surfwatch/surfbot/internal/forecast"
	"github.com/surfwatch/surfbot/internal/report"
	"github.com/surfwatch/surfbot/internal/scheduler"
	"github.com/surfwatch/surfbot/internal/telegram"
	"github.com/surfwatch/surfbot/internal/tide"
	"github.com/surfwatch/surfbot/internal/weather"
	"github.com/surfwatch/surfbot/pkg/httpx"
)

func main() {
	// A local .env is optional; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	forecasts := forecast.NewService(httpx.New(httpx.Options{
		BaseURL:   cfg.SurfForecastBaseURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: cfg.UserAgent,
	}))

	weatherClient := weather.NewClient(httpx.New(httpx.Options{
		BaseURL:   cfg.WeatherBaseURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: "surfbot/1.0 (surfbot@surfwatch.dev)",
	}))

	tides := tide.NewClient(httpx.New(httpx.Options{
		BaseURL: cfg.TidesBaseURL,
		Timeout: cfg.HTTPTimeout,
	}))

	commutes := commute.NewService(httpx.New(httpx.Options{
		BaseURL: cfg.MapsBaseURL,
		Timeout: cfg.HTTPTimeout,
	}), cfg.GoogleMapsAPIKey, cfg.HomeAddress)

	// The Telegram client's timeout must outlast the 30s long poll.
	tg := telegram.NewClient(httpx.New(httpx.Options{
		BaseURL: cfg.TelegramBaseURL,
		Timeout: 35 * time.Second,
	}), cfg.TelegramToken, cfg.TelegramChatID)

	reports := report.NewService(cfg, forecasts, weatherClient, tides, commutes)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("SurfBot starting")
	tg.Send(ctx, reports.OnlineBanner())

	sched := scheduler.New(cfg.TimeZone, cfg.DailyHour, cfg.TickerStart, cfg.TickerEnd, scheduler.Jobs{
		Daily: func() {
			tg.Send(ctx, reports.Daily(ctx))
		},
		SaturdayDigest: func() {
			if msg := reports.WeekendBeachDigest(ctx); msg != "" {
				tg.Send(ctx, msg)
			}
		},
		EveningAlerts: func() {
			for _, msg := range reports.EveningAlerts(ctx) {
				tg.Send(ctx, msg)
			}
		},
		HourlyTicker: func() {
			if msg := reports.SurfNow(ctx); msg != "" {
				tg.Send(ctx, msg)
			}
		},
	})
	go sched.Run(ctx)

	bot.New(tg, reports).Listen(ctx)
	log.Info().Msg("SurfBot shutting down")
}
