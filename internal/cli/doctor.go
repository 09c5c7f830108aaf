package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"wt/internal/gitutil"
	"wt/internal/shellwrap"
	"wt/internal/worktree"
)

func newDoctorCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose wt prerequisites and environment issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorCheck struct {
	Name string
	Fn   func() error
}

func runDoctor(cmd *cobra.Command, verbose bool) error {
	wd, _ := os.Getwd()
	checks := []doctorCheck{
		{Name: "git installed", Fn: requireOnPath("git")},
		{Name: "inside a git repository", Fn: func() error {
			return gitutil.RequireRepository(wd)
		}},
		{Name: "bare worktree present", Fn: func() error {
			if err := gitutil.RequireRepository(wd); err != nil {
				return err
			}
			worktrees, err := worktree.List(wd)
			if err != nil {
				return err
			}
			_, err = worktree.Bare(worktrees)
			return err
		}},
		{Name: "config readable", Fn: func() error {
			_, err := loadUserConfig()
			return err
		}},
		{Name: "shell wrapper active", Fn: func() error {
			if !shellwrap.Active() {
				return errors.New("add `eval \"$(wt activate)\"` to your shell rc")
			}
			return nil
		}},
	}

	var failures []string
	for _, check := range checks {
		if err := check.Fn(); err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "healthy!")
	return nil
}

func requireOnPath(binary string) func() error {
	return func() error {
		if _, err := exec.LookPath(binary); err != nil {
			return fmt.Errorf("%s not found on PATH", binary)
		}
		return nil
	}
}
