package config

import (
	"errors"
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule = "@every 10m" // RETRY_PERIOD of 600 seconds
	DefaultLookback     = 48 * time.Hour
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultLogFile      = "program.log"
)

// ErrMissingCredential is returned when one of the required tokens is not set.
var ErrMissingCredential = errors.New("one or more tokens are missing, check the .env file")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
	Endpoint       string
	PollSchedule   string        // Cron spec or descriptor, e.g. "@every 10m"
	Lookback       time.Duration // from_date = start - Lookback
	HTTPTimeout    time.Duration
	LogLevel       string
	LogFile        string
	Environment    string
	DatabaseURL    string // Optional, enables the delivery journal
}

// Load reads configuration from environment variables and .env file (if present).
// Each credential also accepts the variable name used by the first version of the bot.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := LoggingDefaults()
	var err error

	cfg.PracticumToken = firstEnv("PRACTICUM_TOKEN", "TOKEN_YP")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("%w: PRACTICUM_TOKEN is not set", ErrMissingCredential)
	}

	cfg.TelegramToken = firstEnv("TELEGRAM_TOKEN", "TOKEN_TG")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_TOKEN is not set", ErrMissingCredential)
	}

	// Numeric id or @channel username, passed to Telegram as is.
	cfg.TelegramChatID = firstEnv("TELEGRAM_CHAT_ID", "MY_TG_ID")
	if cfg.TelegramChatID == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_CHAT_ID is not set", ErrMissingCredential)
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollSchedule = os.Getenv("POLL_SCHEDULE")
	if cfg.PollSchedule == "" {
		cfg.PollSchedule = DefaultPollSchedule
	}

	cfg.Lookback, err = durationEnv("POLL_LOOKBACK", DefaultLookback)
	if err != nil {
		return nil, err
	}

	cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

// LoggingDefaults returns a config with only the logging settings filled in.
// It never fails, so the log file can be opened before the credentials are checked.
func LoggingDefaults() *AppConfig {
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, raw)
	}
	return d, nil
}
