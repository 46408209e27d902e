package config

import "time"

type Config interface {
	APIConfig
	StorageConfig
	EnvConfig
}

// APIConfig configures the resilient HTTP client.
type APIConfig interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
	GetRetryDelay() time.Duration
	GetRetryLimit() int
}

// StorageConfig configures durable session storage.
type StorageConfig interface {
	GetDataFolder() string
}

type EnvConfig interface {
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

// New reads configuration from the environment.
func New() (Config, error) {
	vars, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: vars}, nil
}
