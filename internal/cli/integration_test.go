package cli

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// standing in for t.Chdir which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}

// setupBareLayout builds the layout wt manages: a bare clone plus linked
// worktrees beside it. Returns the project root and the bare path.
func setupBareLayout(t *testing.T, extraTrees ...string) (string, string) {
	t.Helper()

	seed := t.TempDir()
	gitCmd(t, seed, "init", "-b", "main")
	gitCmd(t, seed, "config", "user.email", "test@example.com")
	gitCmd(t, seed, "config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(seed, "README.md"), []byte("test"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	gitCmd(t, seed, "add", "README.md")
	gitCmd(t, seed, "commit", "-m", "init")

	root := t.TempDir()
	bare := filepath.Join(root, ".bare")
	gitCmd(t, root, "clone", "--bare", seed, bare)
	gitCmd(t, bare, "worktree", "add", filepath.Join(root, "main"), "main")
	for _, name := range extraTrees {
		gitCmd(t, bare, "worktree", "add", "-b", name, filepath.Join(root, name), "main")
	}

	return root, bare
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBareCommandPrintsBarePath(t *testing.T) {
	projRoot, _ := setupBareLayout(t)
	chdir(t, filepath.Join(projRoot, "main"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, stderr, err := runCommand(t, "bare")
	if err != nil {
		t.Fatalf("bare failed: %v\nstderr:\n%s", err, stderr)
	}
	got := strings.TrimSpace(stdout)
	if filepath.Base(got) != ".bare" {
		t.Fatalf("stdout = %q, want the bare checkout path", got)
	}
	if strings.Count(stdout, "\n") != 1 {
		t.Fatalf("bare must print exactly one line, got %q", stdout)
	}
	if !strings.Contains(stderr, "Changing to bare directory") {
		t.Fatalf("missing info log, stderr = %q", stderr)
	}
}

func TestListWritesTableToStderrOnly(t *testing.T) {
	projRoot, _ := setupBareLayout(t, "fix-login")
	chdir(t, filepath.Join(projRoot, "main"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, stderr, err := runCommand(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v\nstderr:\n%s", err, stderr)
	}
	if stdout != "" {
		t.Fatalf("list leaked onto stdout: %q", stdout)
	}
	for _, want := range []string{"(bare)", "main", "fix-login"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("listing missing %q:\n%s", want, stderr)
		}
	}
	currentLine := ""
	for _, line := range strings.Split(stderr, "\n") {
		if strings.HasPrefix(line, "* ") {
			currentLine = line
		}
	}
	if !strings.Contains(currentLine, "main") {
		t.Fatalf("current worktree not marked:\n%s", stderr)
	}
}

func TestRemoveAllPrintsBareAndRemovesTrees(t *testing.T) {
	projRoot, bare := setupBareLayout(t, "fix-login", "spike")
	chdir(t, filepath.Join(projRoot, "main"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, stderr, err := runCommand(t, "remove", "--all")
	if err != nil {
		t.Fatalf("remove --all failed: %v\nstderr:\n%s", err, stderr)
	}
	if got := strings.TrimSpace(stdout); filepath.Base(got) != filepath.Base(bare) {
		t.Fatalf("stdout = %q, want bare path", got)
	}
	for _, name := range []string{"main", "fix-login", "spike"} {
		if _, statErr := os.Stat(filepath.Join(projRoot, name)); !os.IsNotExist(statErr) {
			t.Fatalf("worktree %s survived remove --all (stat err %v)", name, statErr)
		}
	}
}

func TestAddCreatesAndPrintsWorktree(t *testing.T) {
	projRoot, _ := setupBareLayout(t)
	chdir(t, filepath.Join(projRoot, "main"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, stderr, err := runCommand(t, "add", "-b", "fix-login", "../fix-login", "main")
	if err != nil {
		t.Fatalf("add failed: %v\nstderr:\n%s", err, stderr)
	}
	got := strings.TrimSpace(stdout)
	if filepath.Base(got) != "fix-login" {
		t.Fatalf("stdout = %q, want new worktree path", got)
	}
	info, statErr := os.Stat(filepath.Join(projRoot, "fix-login"))
	if statErr != nil || !info.IsDir() {
		t.Fatalf("worktree directory missing: %v", statErr)
	}
}

func TestNotARepositoryError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	stdout, _, err := runCommand(t, "bare")
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if stdout != "" {
		t.Fatalf("stdout must stay empty on failure, got %q", stdout)
	}
}

func gitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()

	fullArgs := append([]string{"-C", dir}, args...)
	cmd := exec.Command("git", fullArgs...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
}
