package cli

import (
	"fmt"

	"github.com/AntonioJCosta/dragonsh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAliasesCommand creates the 'aliases' subcommand.
func NewAliasesCommand(settings *Settings, build SessionBuilder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases",
		Short: "List the aliases defined in the startup config.",
		Long:  `Displays the alias table loaded from the YAML startup config.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAliasesCmd(cmd, *settings, build)
		},
	}
	return cmd
}

// runAliasesCmd contains the core logic for the 'aliases' command.
func runAliasesCmd(cmd *cobra.Command, settings Settings, build SessionBuilder) error {
	streams := streamsOf(cmd)
	session, err := startSession(cmd.Context(), build, settings, streams)
	if err != nil {
		return err
	}
	defer closeSession(session)

	aliases := session.Aliases.List()
	if len(aliases) == 0 {
		fmt.Fprintf(streams.Stdout, "%s %s\n", ui.InfoColor("No aliases configured in"), ui.DetailColor(session.ConfigPath+"."))
		return nil
	}

	fmt.Fprintf(streams.Stdout, "%s %s\n", ui.HeaderColor("Aliases from"), ui.DetailColor(session.ConfigPath+":"))

	table := tablewriter.NewWriter(streams.Stdout)
	table.SetHeader([]string{"Alias Name", "Command"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range aliases {
		table.Append([]string{ui.AliasNameColor(a.Name), ui.AliasCmdColor(a.Command)})
	}
	table.Render()
	return nil
}
