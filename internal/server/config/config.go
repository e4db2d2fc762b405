// Package config handles configuration for the walletgate server, including
// defaults, environment variables, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime settings for the walletgate server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - SecretKey: the process-wide secret used for wallet seed derivation and
//     (via HKDF) session token signing. It has no default: a publicly known
//     fallback would let anyone forge sessions and recompute every wallet.
//   - SessionTTL: lifetime of issued session tokens and cookies.
//   - LogLevel: zap level string (debug, info, warn, error).
type Config struct {
	EndpointAddr string
	SecretKey    string
	SessionTTL   time.Duration
	LogLevel     string
}

// LoadDefaults populates Config with development defaults. SecretKey is
// deliberately left empty; Validate refuses to run without one.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SessionTTL = 1 * time.Hour
	c.LogLevel = "info"
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return errors.New("config: secret key is not set")
	}
	if c.SessionTTL <= 0 {
		return errors.New("config: session ttl must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and finally command-line
// flags. The result is validated before being returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
