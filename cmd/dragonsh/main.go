package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AntonioJCosta/dragonsh/internal/adapters/commandline"
	"github.com/AntonioJCosta/dragonsh/internal/adapters/linereader"
	"github.com/AntonioJCosta/dragonsh/internal/adapters/luaplugin"
	"github.com/AntonioJCosta/dragonsh/internal/adapters/nativeplugin"
	"github.com/AntonioJCosta/dragonsh/internal/adapters/oscommand"
	"github.com/AntonioJCosta/dragonsh/internal/adapters/pluginloader"
	"github.com/AntonioJCosta/dragonsh/internal/core/domain/environment"
	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/handlers/cli"
	"github.com/AntonioJCosta/dragonsh/internal/handlers/ui"
	"github.com/AntonioJCosta/dragonsh/internal/logging"
	"github.com/AntonioJCosta/dragonsh/internal/repositories/history"
	"github.com/AntonioJCosta/dragonsh/internal/repositories/shellconfig"
	"github.com/spf13/afero"
)

// Version is set at build time
var Version = "dev"

func main() {
	settings, err := cli.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(Version, settings, buildSession, newLineReader)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildSession(_ context.Context, settings cli.Settings, streams ports.IOBindings) (*cli.Session, error) {
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	env, err := environment.NewOS()
	if err != nil {
		return nil, err
	}

	configPath := settings.ConfigPath
	if configPath == "" {
		if configPath, err = shellconfig.DefaultPath(); err != nil {
			return nil, err
		}
	}

	plugins := pluginloader.NewRouter(nativeplugin.NewLoader(), luaplugin.NewLoader(env.Fs()))

	return cli.NewSession(cli.SessionDeps{
		ConfigLoader: shellconfig.NewYAMLConfigLoader(env.Fs(), configPath),
		Env:          env,
		PluginLoader: plugins,
		Parser:       commandline.NewFieldsParser(),
		Launcher:     oscommand.NewOSProcessLauncher(logger),
		Killer:       oscommand.NewOSProcessKiller(),
		Streams:      streams,
		Logger:       logger,
		Version:      Version,
	})
}

func newLineReader(settings cli.Settings, completion cli.Completion) (ports.LineReader, error) {
	// An unknown home is only fatal when no absolute history path is given.
	home, _ := os.UserHomeDir()
	historyPath, err := history.NewFileHistoryFinder(afero.NewOsFs(), home, settings.HistoryPath).Find()
	if err != nil {
		return nil, err
	}
	return linereader.New(linereader.Options{
		Prompt:       ui.PromptText,
		HistoryFile:  historyPath,
		HistoryLimit: settings.HistoryLimit,
		Commands:     completion.Commands,
		EnvNames:     completion.EnvNames,
	})
}
