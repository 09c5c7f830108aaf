package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bare",
		Short: "Print the bare checkout's path for the wrapper to cd into",
		Args:  cobra.NoArgs,
		RunE:  runBare,
	}
}

func runBare(cmd *cobra.Command, args []string) error {
	sess, err := loadSessionFromWD()
	if err != nil {
		return err
	}
	bare, err := sess.bare()
	if err != nil {
		return err
	}

	logInfof(cmd.ErrOrStderr(), "Changing to bare directory: %s", bare.Path)
	fmt.Fprintln(cmd.OutOrStdout(), bare.Path)
	return nil
}
