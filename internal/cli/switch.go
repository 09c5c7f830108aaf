package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wt/internal/selector"
	"wt/internal/worktree"
)

// runSwitch is the default action: pick a worktree interactively and print
// its path for the shell wrapper to cd into. Aborting the picker is a no-op,
// not an error.
func runSwitch(cmd *cobra.Command, args []string) error {
	sess, err := loadSessionFromWD()
	if err != nil {
		return err
	}

	options := worktree.NonBare(sess.Worktrees)
	if len(options) == 0 {
		logErrorf(cmd.ErrOrStderr(), "No worktrees available.")
		return nil
	}

	chosen, ok, err := selector.Pick(options, sess.Config.Prompt)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	logInfof(cmd.ErrOrStderr(), "Changing current worktree: %s", chosen.Name())
	fmt.Fprintln(cmd.OutOrStdout(), chosen.Path)
	return nil
}
