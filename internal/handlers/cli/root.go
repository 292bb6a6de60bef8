package cli

import (
	"context"
	"fmt"

	"github.com/AntonioJCosta/dragonsh/internal/core/ports"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/dispatcher"
	"github.com/AntonioJCosta/dragonsh/internal/core/services/repl"
	"github.com/AntonioJCosta/dragonsh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the dragonsh command. Without a subcommand it starts
// the interactive shell.
func NewRootCommand(
	version string,
	settings Settings,
	build SessionBuilder,
	newReader ReaderFactory,
) *cobra.Command {
	opts := &settings

	rootCmd := &cobra.Command{
		Use:   "dragonsh",
		Short: "dragonsh is a small interactive command shell.",
		Long: `dragonsh reads one command per line and runs it as a built-in, an alias,
a script, a plugin entry point or an external program.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), cmd, *opts, build, newReader)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "path to the YAML startup config (default ~/.dragonsh/config.yaml)")
	flags.StringVar(&opts.HistoryPath, "history", opts.HistoryPath, "path to the command history file (default ~/.dragonsh/history)")
	flags.IntVar(&opts.HistoryLimit, "history-limit", opts.HistoryLimit, "number of history lines to keep")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "diagnostic log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewRunCommand(opts, build))
	rootCmd.AddCommand(NewAliasesCommand(opts, build))
	rootCmd.AddCommand(NewVersionCommand(version))

	return rootCmd
}

func streamsOf(cmd *cobra.Command) ports.IOBindings {
	return ports.IOBindings{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

// runShell contains the core logic for the interactive session.
func runShell(ctx context.Context, cmd *cobra.Command, settings Settings, build SessionBuilder, newReader ReaderFactory) error {
	streams := streamsOf(cmd)
	session, err := startSession(ctx, build, settings, streams)
	if err != nil {
		return err
	}
	defer closeSession(session)

	reader, err := newReader(settings, Completion{
		Commands: dispatcher.CommandNames(),
		EnvNames: session.Dispatcher.Env().Names,
	})
	if err != nil {
		return err
	}
	defer reader.Close()

	stopGuard := guardInterrupts(session.Logger)
	defer stopGuard()

	fmt.Fprintln(streams.Stdout, ui.InfoColor("Welcome to Dragon-shell!"))

	promptColor := ui.ThemePromptColor(session.Config.Theme)
	loop := repl.New(reader, session.Parser, session.Dispatcher, streams.Stdout, streams.Stderr, session.Logger,
		repl.WithPrompt(func() string { return promptColor(ui.PromptText) }),
		repl.WithStyles(ui.ErrorColor, ui.InfoColor),
	)
	return loop.Run(ctx)
}
