package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the server.
const (
	EnvAddr       = "WALLETGATE_ADDR"
	EnvSecret     = "WALLETGATE_SECRET"
	EnvSessionTTL = "WALLETGATE_SESSION_TTL_MIN"
	EnvLogLevel   = "WALLETGATE_LOG_LEVEL"
)

// parseEnv overlays configuration from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win because godotenv.Load never overrides existing ones.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAddr); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv(EnvSecret); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			config.SessionTTL = time.Duration(m) * time.Minute
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
}
