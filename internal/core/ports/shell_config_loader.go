package ports

import "github.com/AntonioJCosta/dragonsh/internal/core/domain/alias"

// EnvVar is a KEY=VALUE pair applied to the session environment at startup.
type EnvVar struct {
	Key   string `yaml:"key" validate:"required,nospace"`
	Value string `yaml:"value"`
}

// ShellConfig is the parsed startup configuration file.
type ShellConfig struct {
	Theme   string        `yaml:"theme"`
	Aliases []alias.Alias `yaml:"aliases" validate:"dive"`
	Env     []EnvVar      `yaml:"env" validate:"dive"`
}

/*
ShellConfigLoader reads the startup configuration, writing the defaults first
when the file does not exist. Failures wrap shellerr.ErrConfig.
*/
type ShellConfigLoader interface {
	Load() (ShellConfig, error)
	Path() string
}
