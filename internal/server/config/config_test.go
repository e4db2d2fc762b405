package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":8080")
	assert.Equal(t, c.SessionTTL, 1*time.Hour)
	assert.Equal(t, c.LogLevel, "info")
	assert.Empty(t, c.SecretKey, "the secret must not have a default value")
}

func TestValidate_RejectsMissingSecret(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := c.Validate()
	require.Error(t, err)

	c.SecretKey = "   "
	assert.Error(t, c.Validate(), "whitespace-only secret must be rejected")

	c.SecretKey = "fixture-secret"
	assert.NoError(t, c.Validate())
}

func TestValidate_RejectsNonPositiveTTL(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.SecretKey = "fixture-secret"

	c.SessionTTL = 0
	assert.Error(t, c.Validate())

	c.SessionTTL = -time.Minute
	assert.Error(t, c.Validate())
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv(EnvAddr, ":9090")
	t.Setenv(EnvSecret, "env-secret")
	t.Setenv(EnvSessionTTL, "30")
	t.Setenv(EnvLogLevel, "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.EndpointAddr, ":9090")
	assert.Equal(t, c.SecretKey, "env-secret")
	assert.Equal(t, c.SessionTTL, 30*time.Minute)
	assert.Equal(t, c.LogLevel, "debug")
}

func TestParseEnv_IgnoresUnsetAndMalformed(t *testing.T) {
	t.Setenv(EnvSessionTTL, "not-a-number")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, c.SessionTTL, 1*time.Hour, "malformed ttl must keep the default")
	assert.Equal(t, c.EndpointAddr, ":8080")
}

func TestLoadConfig_FailsWithoutSecret(t *testing.T) {
	t.Setenv(EnvSecret, "")

	_, err := LoadConfig()
	require.Error(t, err, "startup must fail fast when no secret is configured")
}

func TestLoadConfig_SucceedsWithEnvSecret(t *testing.T) {
	t.Setenv(EnvSecret, "env-secret")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, c.SecretKey, "env-secret")
}
