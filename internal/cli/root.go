package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func Execute() error {
	// All human-facing output lands on stderr; only color it for terminals.
	if !writerIsTerminal(os.Stderr) {
		color.NoColor = true
	}
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "wt",
		Short:         "Navigate and manage bare-repo git worktrees",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSwitch,
	}

	cmd.AddCommand(
		newListCommand(),
		newBareCommand(),
		newAddCommand(),
		newRemoveCommand(),
		newActivateCommand(),
		newDoctorCommand(),
		newVersionCommand(),
	)

	return cmd
}
