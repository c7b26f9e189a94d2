package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds process-wide settings. Loaded once at startup and read-only
// afterwards; per-call code never touches the environment.
type Config struct {
	// APIKey authenticates against the video generation provider.
	// Required for serving.
	APIKey string

	// APIEndpoint overrides the provider endpoint. Empty means the client
	// default.
	APIEndpoint string
}

var globalConfig *Config

// Load reads the environment (and .env, if present) into the global config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	globalConfig = &Config{
		APIKey:      os.Getenv("VIDEOGEN_API_KEY"),
		APIEndpoint: os.Getenv("VIDEOGEN_API_URL"),
	}

	return globalConfig
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	if globalConfig == nil {
		return Load()
	}
	return globalConfig
}
