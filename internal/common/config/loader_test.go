package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, "loan-intake-api", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Database.Redis.Address)
	assert.Equal(t, 3600, cfg.Intake.CacheTTLSeconds)
	assert.Equal(t, 5000, cfg.Events.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Intake.CacheTTLSeconds = 60

	applyDefaults(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Intake.CacheTTLSeconds)
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{}
	applyDefaults(valid)
	require.NoError(t, validateConfig(valid))

	t.Run("missing redis address", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Database.Redis.Address = ""
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Intake.CacheTTLSeconds = -1
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("events enabled without topic", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Events.Enabled = true
		assert.Error(t, validateConfig(cfg))
	})
}
