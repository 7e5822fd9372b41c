package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env carries the environment overrides operators can set without
// touching any file.
type Env struct {
	ConfigPath  string `env:"LABYRINTH_CONFIG"`
	FlagContent string `env:"LABYRINTH_FLAG_CONTENT"`
	LogLevel    string `env:"LABYRINTH_LOG_LEVEL"`
}

// ParseEnv reads the override variables from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Apply lays the overrides onto a loaded configuration. The flag content
// override is in-memory only; it is not written back to the file.
func (e Env) Apply(c *Config) {
	if e.FlagContent != "" {
		c.Set("victory.flag_content", e.FlagContent)
	}
}
