// Package selector provides interactive worktree selection.
package selector

import (
	"errors"
	"fmt"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"

	"wt/internal/worktree"
)

// ErrNotATerminal indicates selection was requested without an interactive
// terminal attached.
var ErrNotATerminal = errors.New("interactive selection requires a terminal")

// Pick runs a fuzzy finder over the given worktrees. The second return value
// is false when the user aborted without choosing; an abort is not an error.
func Pick(worktrees []worktree.Worktree, prompt string) (worktree.Worktree, bool, error) {
	if len(worktrees) == 0 {
		return worktree.Worktree{}, false, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return worktree.Worktree{}, false, ErrNotATerminal
	}

	idx, err := fuzzyfinder.Find(
		worktrees,
		func(i int) string {
			return label(worktrees[i])
		},
		fuzzyfinder.WithPromptString(prompt),
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			return preview(worktrees[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return worktree.Worktree{}, false, nil
		}
		return worktree.Worktree{}, false, fmt.Errorf("fuzzy finder: %w", err)
	}
	return worktrees[idx], true, nil
}

func label(wt worktree.Worktree) string {
	switch {
	case wt.Detached:
		return fmt.Sprintf("%s (detached)", wt.Name())
	case wt.Branch != "":
		return fmt.Sprintf("%s [%s]", wt.Name(), wt.Branch)
	default:
		return wt.Name()
	}
}

func preview(wt worktree.Worktree) string {
	branch := wt.Branch
	if wt.Detached {
		branch = "(detached HEAD)"
	}
	head := wt.Head
	if len(head) > 12 {
		head = head[:12]
	}
	return fmt.Sprintf("Path:   %s\nBranch: %s\nHEAD:   %s", wt.Path, branch, head)
}
