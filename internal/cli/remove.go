package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"wt/internal/gitutil"
	"wt/internal/selector"
	"wt/internal/worktree"
)

type removeOptions struct {
	all   bool
	force bool
}

func newRemoveCommand() *cobra.Command {
	opts := &removeOptions{}
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove worktree(s)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.all, "all", false, "remove all non-bare worktrees")
	cmd.Flags().BoolVar(&opts.force, "force", false, "force removing worktrees with modified or untracked files")
	return cmd
}

func runRemove(cmd *cobra.Command, opts *removeOptions) error {
	sess, err := loadSessionFromWD()
	if err != nil {
		return err
	}
	bare, err := sess.bare()
	if err != nil {
		return err
	}

	if opts.all {
		return removeAll(cmd, sess, bare, opts.force)
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

	logInfof(cmd.ErrOrStderr(), "Removing worktree: %s", chosen.Path)
	if err := removeOne(bare.Path, chosen.Path, opts.force); err != nil {
		return err
	}

	// Relocate the shell only when it was left standing in the removed tree.
	if dest := removeDestination(sess.WD, chosen.Path, bare.Path); dest != "" {
		fmt.Fprintln(cmd.OutOrStdout(), dest)
	}
	return nil
}

func removeAll(cmd *cobra.Command, sess *session, bare worktree.Worktree, force bool) error {
	for _, wt := range worktree.NonBare(sess.Worktrees) {
		logInfof(cmd.ErrOrStderr(), "Removing %s...", wt.Path)
		if err := removeOne(bare.Path, wt.Path, force); err != nil {
			logWarnf(cmd.ErrOrStderr(), "failed to remove %s: %v", wt.Path, err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), bare.Path)
	return nil
}

func removeOne(barePath, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	_, err := gitutil.Run(barePath, args...)
	return err
}

// removeDestination decides where the wrapper should leave the user after a
// removal: the bare checkout when their cwd was inside the removed tree,
// nowhere otherwise.
func removeDestination(wd, removed, bare string) string {
	if isWithin(wd, removed) {
		return bare
	}
	return ""
}
