package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wt/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wt version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stderr keeps stdout clean for the shell wrapper.
			_, err := fmt.Fprintf(cmd.ErrOrStderr(), "wt version %s\n", version.String())
			return err
		},
	}
}
