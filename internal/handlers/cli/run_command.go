package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dragonsh/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(settings *Settings, build SessionBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script_path> [args...]",
		Short: "Run a script of shell commands without starting the interactive shell.",
		Long: `Executes every non-blank line of the script through the shell, appending
the given arguments to each line. A failing line is reported and the
remaining lines still run. The exit status is non-zero only when the script
cannot be opened.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCmd(cmd, args, *settings, build)
		},
	}
	// Everything after the script path belongs to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// runRunCmd contains the core logic for the 'run' command.
func runRunCmd(cmd *cobra.Command, args []string, settings Settings, build SessionBuilder) error {
	streams := streamsOf(cmd)
	session, err := startSession(cmd.Context(), build, settings, streams)
	if err != nil {
		return err
	}
	defer closeSession(session)

	report, err := session.Dispatcher.RunScript(cmd.Context(), args[0], args[1:])
	if err != nil {
		return fmt.Errorf("error running script: %w", err)
	}

	if report.Failed > 0 {
		fmt.Fprintln(streams.Stderr, ui.WarningColor(fmt.Sprintf("%s: %d of %d lines failed", args[0], report.Failed, report.Lines)))
	}
	session.Logger.Debug("script finished", "path", args[0], "lines", report.Lines, "succeeded", report.Succeeded, "failed", report.Failed)
	return nil
}
