package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quokkabot/scriptscout/catalog"
	"github.com/quokkabot/scriptscout/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, catalog.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 30, cfg.PollTimeout)
	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.SweepInterval)
	assert.Equal(t, logging.LogLevelInfo, cfg.Level())
}

func TestLoad_MissingTokenIsFatal(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("SCRIPTBLOX_BASE_URL", "http://localhost:8080/api/script")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/script", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, logging.LogLevelDebug, cfg.Level())
}
