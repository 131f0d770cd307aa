package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/quokkabot/scriptscout/catalog"
	"github.com/quokkabot/scriptscout/core"
	"github.com/quokkabot/scriptscout/logging"
)

// Config carries all process settings. Field defaults mirror the public
// ScriptBlox endpoint and a five-result page.
type Config struct {
	// BotToken authenticates against the Telegram Bot API. Required.
	BotToken string `env:"BOT_TOKEN,required,notEmpty"`

	// BaseURL is the upstream catalog API root.
	BaseURL string `env:"SCRIPTBLOX_BASE_URL"`

	// PageSize is the number of results per search page.
	PageSize int `env:"PAGE_SIZE"`

	// PollTimeout is the Telegram long-poll timeout in seconds.
	PollTimeout int `env:"POLL_TIMEOUT" envDefault:"30"`

	// SessionTTL evicts sessions idle longer than this. Zero disables the
	// sweep; sessions then live for the process lifetime.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// SweepInterval is how often the idle-session sweep runs when
	// SessionTTL is set.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is text or json.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses configuration from the environment. A missing or empty
// BOT_TOKEN yields an error; the entrypoint treats that as fatal.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = catalog.DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = core.DefaultPageSize
	}
	return cfg, nil
}

// Level maps the configured log level string onto the logging enum.
func (c Config) Level() logging.LogLevel {
	return logging.ParseLevel(c.LogLevel)
}
