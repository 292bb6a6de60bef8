/*
Package shellconfig reads the YAML startup configuration and applies it to a
session environment.
*/
package shellconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/alias"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/shellerr"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const configDir = ".dragonsh"
const configFilename = "config.yaml"

// DefaultTheme is written to a freshly created config file.
const DefaultTheme = "dark"

// Default returns the configuration written when no file exists.
func Default() ports.ShellConfig {
	return ports.ShellConfig{
		Theme:   DefaultTheme,
		Aliases: []alias.Alias{},
		Env:     []ports.EnvVar{},
	}
}

// DefaultPath returns ~/.dragonsh/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir, configFilename), nil
}

// YAMLConfigLoader loads the startup configuration from a YAML file.
type YAMLConfigLoader struct {
	fs       afero.Fs
	path     string
	validate *validator.Validate
}

// NewYAMLConfigLoader creates a loader for the file at path on fs.
func NewYAMLConfigLoader(fs afero.Fs, path string) ports.ShellConfigLoader {
	return &YAMLConfigLoader{
		fs:       fs,
		path:     path,
		validate: newValidator(),
	}
}

func (l *YAMLConfigLoader) Path() string {
	return l.path
}

/*
Load parses the configuration file. An absent file is created with the
defaults, which are returned. An empty file yields the defaults without being
rewritten.
*/
func (l *YAMLConfigLoader) Load() (ports.ShellConfig, error) {
	data, err := afero.ReadFile(l.fs, l.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := l.write(cfg); err != nil {
			return ports.ShellConfig{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return ports.ShellConfig{}, fmt.Errorf("%w: failed to read %s: %w", shellerr.ErrConfig, toUserFriendlyPath(l.path), err)
	}

	cfg, err := decode(data)
	if err != nil {
		return ports.ShellConfig{}, fmt.Errorf("%w: failed to parse %s: %w", shellerr.ErrConfig, toUserFriendlyPath(l.path), err)
	}
	if err := l.validate.Struct(cfg); err != nil {
		return ports.ShellConfig{}, fmt.Errorf("%w: invalid %s: %w", shellerr.ErrConfig, toUserFriendlyPath(l.path), err)
	}
	return cfg, nil
}

func (l *YAMLConfigLoader) write(cfg ports.ShellConfig) error {
	if err := l.fs.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory for %s: %w", shellerr.ErrConfig, toUserFriendlyPath(l.path), err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode defaults: %w", shellerr.ErrConfig, err)
	}
	if err := afero.WriteFile(l.fs, l.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", shellerr.ErrConfig, toUserFriendlyPath(l.path), err)
	}
	return nil
}

func decode(data []byte) (ports.ShellConfig, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return ports.ShellConfig{}, err
	}
	return cfg, nil
}

// ApplyEnv sets every configured env entry on the session environment, in order.
func ApplyEnv(cfg ports.ShellConfig, env *environment.Environment) {
	for _, v := range cfg.Env {
		env.Set(v.Key, v.Value)
	}
}
