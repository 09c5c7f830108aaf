package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wt/internal/shellwrap"
)

func newActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Print the shell wrapper that enables wt to change your cwd",
		Long: "The wt binary cannot change its parent shell's working directory, so\n" +
			"navigation needs a shell function wrapping it. Add this line to your\n" +
			"shell rc:\n\n    eval \"$(wt activate)\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), shellwrap.Script)
			return nil
		},
	}
}
