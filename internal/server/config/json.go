package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/walletgate/walletgate/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only when reading a JSON
// configuration file; its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr      string `json:"endpoint_addr"`
	SecretKey         string `json:"secret_key"`
	SessionTTLMinutes int    `json:"session_ttl_minutes"`
	LogLevel          string `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Only fields present in the file
// overwrite earlier layers. An unreadable or malformed file panics, the same
// as any other unusable startup configuration.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionTTLMinutes != 0 {
		config.SessionTTL = time.Duration(c.SessionTTLMinutes) * time.Minute
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
