package cli

import (
	"os"

	"wt/internal/config"
	"wt/internal/gitutil"
	"wt/internal/worktree"
)

// session gathers what a navigating command needs: the invoking directory,
// the repository's worktree listing, and the user configuration.
type session struct {
	WD        string
	Config    config.Config
	Worktrees []worktree.Worktree
}

func loadSessionFromWD() (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := gitutil.RequireRepository(wd); err != nil {
		return nil, err
	}
	worktrees, err := worktree.List(wd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadUserConfig()
	if err != nil {
		return nil, err
	}
	return &session{WD: wd, Config: cfg, Worktrees: worktrees}, nil
}

func loadUserConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		// No resolvable config directory; run on defaults.
		return config.Default(), nil
	}
	return config.Load(path)
}

func (s *session) bare() (worktree.Worktree, error) {
	return worktree.Bare(s.Worktrees)
}
