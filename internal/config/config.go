package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/surfwatch/surfbot/internal/models"
)

// Config carries everything the bot needs at startup. It is loaded once,
// validated, and handed to the services read-only; nothing mutates it at
// runtime.
type Config struct {
	Environment string
	LogLevel    zerolog.Level
	HTTPTimeout time.Duration

	TelegramToken   string
	TelegramChatID  string
	TelegramBaseURL string

	SurfForecastBaseURL string
	UserAgent           string
	CountyRegion        string

	WeatherBaseURL string
	TidesBaseURL   string
	MapsBaseURL    string

	GoogleMapsAPIKey string
	HomeAddress      string
	// Home coordinates feed the inland heat-wave forecast lookup.
	HomeLatitude  float64
	HomeLongitude float64

	TimeZone *time.Location

	Spots        []models.Spot
	Beaches      []models.BeachLocation
	SchoolBreaks models.SchoolCalendar
	CoastRegions []string

	PTOThreshold int
	DailyHour    int
	TickerStart  int
	TickerEnd    int

	WeekendBeachDigest bool
	SchoolBreakAlerts  bool
	HeatWaveAlerts     bool
	HeatThresholdF     int
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithHTTPTimeout allows setting the outbound HTTP timeout
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithTelegram sets the transport credentials and destination chat.
func WithTelegram(token, chatID string) Option {
	return func(c *Config) {
		c.TelegramToken = token
		c.TelegramChatID = chatID
	}
}

// WithTimeZone sets the wall-clock zone used by the scheduler and report
// headers. An unknown zone name keeps the default.
func WithTimeZone(name string) Option {
	return func(c *Config) {
		if loc, err := time.LoadLocation(name); err == nil {
			c.TimeZone = loc
		}
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		la = time.UTC
	}

	cfg := &Config{
		Environment: "production",
		LogLevel:    zerolog.InfoLevel,
		HTTPTimeout: 15 * time.Second,

		TelegramBaseURL:     "https://api.telegram.org",
		SurfForecastBaseURL: "https://www.surf-forecast.com",
		UserAgent:           "Mozilla/5.0 (compatible; SurfBot/1.0)",
		CountyRegion:        "Los-Angeles-County",

		WeatherBaseURL: "https://api.weather.gov",
		TidesBaseURL:   "https://api.tidesandcurrents.noaa.gov",
		MapsBaseURL:    "https://maps.googleapis.com",

		HomeAddress:   "Glendale, CA",
		HomeLatitude:  34.1426,
		HomeLongitude: -118.2551,

		TimeZone: la,

		Spots:        DefaultSpots(),
		Beaches:      DefaultBeaches(),
		SchoolBreaks: DefaultSchoolBreaks(),
		CoastRegions: DefaultCoastRegions(),

		PTOThreshold: 5,
		DailyHour:    6,
		TickerStart:  6,
		TickerEnd:    18,

		WeekendBeachDigest: true,
		SchoolBreakAlerts:  true,
		HeatWaveAlerts:     true,
		HeatThresholdF:     90,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Validate checks the configuration that cannot be degraded around. A
// missing Google Maps key just disables commute times; an unusable chat
// transport is fatal.
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("telegram token is required (SURFBOT_TOKEN)")
	}
	if c.TelegramChatID == "" {
		return fmt.Errorf("telegram chat id is required (SURFBOT_CHAT_ID)")
	}
	return nil
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	cfg := New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithHTTPTimeout(getDurationEnvOrDefault("HTTP_TIMEOUT", 15*time.Second)),
		WithTelegram(os.Getenv("SURFBOT_TOKEN"), os.Getenv("SURFBOT_CHAT_ID")),
		WithTimeZone(getEnvOrDefault("SURFBOT_TZ", "America/Los_Angeles")),
	)
	cfg.GoogleMapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.PTOThreshold = getIntEnvOrDefault("SURFBOT_PTO_THRESHOLD", cfg.PTOThreshold)
	cfg.DailyHour = getIntEnvOrDefault("SURFBOT_DAILY_HOUR", cfg.DailyHour)
	cfg.HeatThresholdF = getIntEnvOrDefault("SURFBOT_HEAT_THRESHOLD_F", cfg.HeatThresholdF)
	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
