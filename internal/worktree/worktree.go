// Package worktree models the worktrees attached to a repository, as
// reported by `git worktree list --porcelain`.
package worktree

import (
	"errors"
	"path/filepath"
	"strings"

	"wt/internal/gitutil"
)

// ErrNoBareWorktree indicates the repository has no bare checkout, which the
// layout managed by wt requires.
var ErrNoBareWorktree = errors.New("no bare worktree found")

// Worktree is a single entry from the porcelain worktree listing.
type Worktree struct {
	Path     string
	Head     string
	Branch   string
	Bare     bool
	Detached bool
}

// Name is the directory basename, used wherever a short label is wanted.
func (w Worktree) Name() string {
	return filepath.Base(w.Path)
}

// List enumerates the worktrees attached to the repository containing dir.
func List(dir string) ([]Worktree, error) {
	out, err := gitutil.Run(dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParsePorcelain(out), nil
}

// ParsePorcelain decodes `git worktree list --porcelain` output. Entries are
// blank-line separated blocks of "attribute value" lines.
func ParsePorcelain(out string) []Worktree {
	var result []Worktree
	var cur *Worktree
	flush := func() {
		if cur != nil {
			result = append(result, *cur)
			cur = nil
		}
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			flush()
			continue
		}
		attr, value, _ := strings.Cut(line, " ")
		switch attr {
		case "worktree":
			flush()
			cur = &Worktree{Path: value}
		case "HEAD":
			if cur != nil {
				cur.Head = value
			}
		case "branch":
			if cur != nil {
				cur.Branch = strings.TrimPrefix(value, "refs/heads/")
			}
		case "bare":
			if cur != nil {
				cur.Bare = true
			}
		case "detached":
			if cur != nil {
				cur.Detached = true
			}
		}
	}
	flush()
	return result
}

// Bare picks the bare checkout out of a listing.
func Bare(worktrees []Worktree) (Worktree, error) {
	for _, wt := range worktrees {
		if wt.Bare {
			return wt, nil
		}
	}
	return Worktree{}, ErrNoBareWorktree
}

// NonBare filters the listing down to checkouts a user can work in.
func NonBare(worktrees []Worktree) []Worktree {
	result := make([]Worktree, 0, len(worktrees))
	for _, wt := range worktrees {
		if !wt.Bare {
			result = append(result, wt)
		}
	}
	return result
}

// FindContaining returns the worktree whose tree contains path, if any.
func FindContaining(worktrees []Worktree, path string) (Worktree, bool) {
	for _, wt := range worktrees {
		if isWithin(path, wt.Path) {
			return wt, true
		}
	}
	return Worktree{}, false
}

func isWithin(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || !strings.HasPrefix(rel, "..")
}
