package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvVars holds the environment-sourced settings.
type EnvVars struct {
	BaseURL        string        `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	RetryDelay     time.Duration `env:"API_RETRY_DELAY" envDefault:"350ms"`
	RetryLimit     int           `env:"API_RETRY_LIMIT" envDefault:"1"`
	DataFolder     string        `env:"FOLDER" envDefault:"./data"`
	Environment    string        `env:"ENV" envDefault:"DEV"`
}

// ParseEnv parses EnvVars from the process environment.
func ParseEnv() (EnvVars, error) {
	vars, err := env.ParseAs[EnvVars]()
	if err != nil {
		return EnvVars{}, fmt.Errorf("config.ParseEnv: %w", err)
	}
	return vars, nil
}

var _ Config = mainConfig{}

func (e EnvVars) GetBaseURL() string {
	return e.BaseURL
}

func (e EnvVars) GetRequestTimeout() time.Duration {
	return e.RequestTimeout
}

func (e EnvVars) GetRetryDelay() time.Duration {
	return e.RetryDelay
}

func (e EnvVars) GetRetryLimit() int {
	return e.RetryLimit
}

func (e EnvVars) GetDataFolder() string {
	return e.DataFolder
}

func (e EnvVars) GetEnv() string {
	return e.Environment
}
