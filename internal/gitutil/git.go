package gitutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// ErrNotARepository indicates the working directory is outside any git repository.
var ErrNotARepository = errors.New("not a git repository")

// Run executes git within dir and returns trimmed stdout.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %v\n%s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RequireRepository returns ErrNotARepository when dir is not inside a git
// repository or one of its worktrees.
func RequireRepository(dir string) error {
	cmd := exec.Command("git", "-C", dir, "rev-parse")
	if err := cmd.Run(); err != nil {
		return ErrNotARepository
	}
	return nil
}

var headBranchPattern = regexp.MustCompile(`^\s*HEAD\s+branch:\s*(.*)$`)

// DefaultBranch asks the origin remote for its HEAD branch. A missing or
// unreachable remote yields an empty string rather than an error.
func DefaultBranch(dir string) string {
	out, err := Run(dir, "remote", "show", "origin")
	if err != nil {
		return ""
	}
	return parseDefaultBranch(out)
}

func parseDefaultBranch(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if m := headBranchPattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
