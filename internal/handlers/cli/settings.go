package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Settings are the process-level options, read from the environment and
// overridable by flags.
type Settings struct {
	ConfigPath   string `env:"DRAGONSH_CONFIG"`
	HistoryPath  string `env:"DRAGONSH_HISTORY"`
	HistoryLimit int    `env:"DRAGONSH_HISTORY_LIMIT" envDefault:"1000" validate:"gt=0"`
	LogLevel     string `env:"DRAGONSH_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn warning error"`
}

// LoadSettings parses Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment settings: %w", err)
	}
	return s, nil
}

// Validate checks the settings after flags have been applied.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
