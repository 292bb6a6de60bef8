package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/aliastable"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/dispatcher"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/pluginregistry"
	"github.com/AntonioJCosta/dragonsh/internal/repositories/shellconfig"
)

// Session is the state shared by the commands of one dragonsh invocation.
type Session struct {
	Config     ports.ShellConfig
	ConfigPath string
	Aliases    ports.AliasTable
	Plugins    *pluginregistry.Registry
	Parser     ports.CommandParser
	Dispatcher *dispatcher.Dispatcher
	Logger     *slog.Logger
}

// Close unloads every plugin still registered.
func (s *Session) Close() error {
	return s.Plugins.Close()
}

// SessionDeps are the adapters a Session is assembled from.
type SessionDeps struct {
	ConfigLoader ports.ShellConfigLoader
	Env          *environment.Environment
	PluginLoader ports.PluginLoader
	Parser       ports.CommandParser
	Launcher     ports.ProcessLauncher
	Killer       ports.ProcessKiller
	Streams      ports.IOBindings
	Logger       *slog.Logger
	Version      string
}

// SessionBuilder creates the Session for the resolved settings.
type SessionBuilder func(ctx context.Context, settings Settings, streams ports.IOBindings) (*Session, error)

// Completion is what the line editor offers on tab.
type Completion struct {
	Commands []string
	EnvNames func() []string
}

// ReaderFactory creates the interactive line source.
type ReaderFactory func(settings Settings, completion Completion) (ports.LineReader, error)

/*
NewSession loads the startup configuration, applies its env entries to the
session environment and wires the dispatcher. A config failure is returned
as is and is fatal to the caller.
*/
func NewSession(deps SessionDeps) (*Session, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, err
	}
	shellconfig.ApplyEnv(cfg, deps.Env)

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	aliases := aliastable.New(cfg.Aliases)
	if aliases.Len() != len(cfg.Aliases) {
		logger.Warn("duplicate alias names in config, the last definition wins",
			"path", deps.ConfigLoader.Path(), "defined", len(cfg.Aliases), "distinct", aliases.Len())
	}
	plugins := pluginregistry.New(deps.PluginLoader, logger)

	d := dispatcher.New(dispatcher.Deps{
		Env:      deps.Env,
		Aliases:  aliases,
		Plugins:  plugins,
		Parser:   deps.Parser,
		Launcher: deps.Launcher,
		Killer:   deps.Killer,
		Streams:  deps.Streams,
		Logger:   logger,
		Version:  deps.Version,
	})
	logger.Debug("session ready", "config", deps.ConfigLoader.Path(), "aliases", aliases.Len(), "dir", deps.Env.Dir())

	return &Session{
		Config:     cfg,
		ConfigPath: deps.ConfigLoader.Path(),
		Aliases:    aliases,
		Plugins:    plugins,
		Parser:     deps.Parser,
		Dispatcher: d,
		Logger:     logger,
	}, nil
}

func closeSession(s *Session) {
	if err := s.Close(); err != nil {
		s.Logger.Warn("failed to unload plugins", "error", err)
	}
}

func startSession(ctx context.Context, build SessionBuilder, settings Settings, streams ports.IOBindings) (*Session, error) {
	s, err := build(ctx, settings, streams)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return s, nil
}
