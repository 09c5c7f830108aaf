package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wt/internal/gitutil"
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <path> [<commit-ish>] [-- <git worktree add options>]",
		Short: "Add a worktree beside the bare checkout and sync it",
		Long: "Add runs `git worktree add` inside the bare checkout, forwarding all\n" +
			"arguments, then fetches remotes and merges the default branch into the\n" +
			"new tree (configurable via the [sync] config block). The new path is\n" +
			"printed so the shell wrapper can cd into it.",
		// Arguments are forwarded verbatim to git worktree add, so flags
		// like -b must not be eaten by our own parser.
		DisableFlagParsing: true,
		RunE:               runAdd,
	}
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return cmd.Help()
	}

	pathArg, ok := worktreePathArg(args)
	if !ok {
		return fmt.Errorf("a worktree path is required")
	}

	sess, err := loadSessionFromWD()
	if err != nil {
		return err
	}
	bare, err := sess.bare()
	if err != nil {
		return err
	}

	targetPath := resolveTargetPath(bare.Path, pathArg)

	gitArgs := append([]string{"-C", bare.Path, "worktree", "add"}, args...)
	gitCmd := exec.Command("git", gitArgs...)
	// git's own output goes to stderr so stdout carries only the new path.
	gitCmd.Stdout = cmd.ErrOrStderr()
	gitCmd.Stderr = cmd.ErrOrStderr()
	gitCmd.Stdin = os.Stdin
	if err := gitCmd.Run(); err != nil {
		return fmt.Errorf("git worktree add failed: %w", err)
	}

	syncNewWorktree(cmd, sess, targetPath)

	fmt.Fprintln(cmd.OutOrStdout(), targetPath)
	return nil
}

// worktreePathArg finds the <path> argument among the options forwarded to
// git worktree add: the first non-flag token, skipping values of flags that
// take one.
func worktreePathArg(args []string) (string, bool) {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		switch {
		case arg == "-b" || arg == "-B" || arg == "--reason":
			skipNext = true
		case strings.HasPrefix(arg, "-"):
			// value-less flag, or --flag=value
		default:
			return arg, true
		}
	}
	return "", false
}

// resolveTargetPath mirrors git's interpretation of the path argument:
// relative paths are anchored at the bare checkout the command runs in.
func resolveTargetPath(barePath, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}
	return filepath.Join(barePath, arg)
}

// syncNewWorktree brings a freshly added tree up to date. The worktree
// already exists at this point, so failures are warnings instead of errors.
func syncNewWorktree(cmd *cobra.Command, sess *session, dir string) {
	stderr := cmd.ErrOrStderr()

	if sess.Config.Sync.FetchEnabled() {
		logInfof(stderr, "Fetching changes")
		if _, err := gitutil.Run(dir, "fetch", "--all"); err != nil {
			logWarnf(stderr, "fetch failed: %v", err)
			return
		}
	}

	if !sess.Config.Sync.MergeEnabled() {
		return
	}
	branch := sess.Config.DefaultBranch
	if branch == "" {
		branch = gitutil.DefaultBranch(dir)
	}
	if branch == "" {
		logWarnf(stderr, "could not determine the default branch; skipping merge")
		return
	}
	logInfof(stderr, "Merging with %s", branch)
	if _, err := gitutil.Run(dir, "merge", branch); err != nil {
		logWarnf(stderr, "merge failed: %v", err)
	}
}
