package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/command/commandtest"
	"github.com/matzehuels/venvkit/pkg/errors"
)

func TestEnsureInitialCommitFreshDir(t *testing.T) {
	dir := t.TempDir()
	r := commandtest.New().
		On("git -C "+dir+" rev-parse --verify --quiet HEAD", commandtest.Response{Fail: true})
	g := New(dir, r)

	made, err := g.EnsureInitialCommit(context.Background())
	if err != nil {
		t.Fatalf("EnsureInitialCommit() error: %v", err)
	}
	if !made {
		t.Error("expected a commit")
	}

	want := []string{
		"git -C " + dir + " init",
		"git -C " + dir + " rev-parse --verify --quiet HEAD",
		"git -C " + dir + " add -A",
		"git -C " + dir + " config user.email",
		"git -C " + dir + " commit --allow-empty -m Initial commit",
	}
	if diff := cmp.Diff(want, r.Calls()); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}

	// No user.email configured: the commit carries the fallback identity.
	specs := r.Specs()
	if diff := cmp.Diff(fallbackIdentity, specs[len(specs)-1].Env); diff != "" {
		t.Errorf("commit env mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureInitialCommitExistingHistory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := commandtest.New()
	g := New(dir, r)

	made, err := g.EnsureInitialCommit(context.Background())
	if err != nil || made {
		t.Fatalf("EnsureInitialCommit() = %v, %v", made, err)
	}
	if r.Called("git -C " + dir + " init") {
		t.Error("git init should be skipped for an existing repository")
	}
	if r.Called("git -C " + dir + " commit") {
		t.Error("commit should be skipped when HEAD exists")
	}
}

func TestEnsureInitialCommitFailure(t *testing.T) {
	dir := t.TempDir()
	r := commandtest.New().On("git -C "+dir+" init", commandtest.Response{Output: "denied", Fail: true})

	_, err := New(dir, r).EnsureInitialCommit(context.Background())
	if !errors.Is(err, errors.ErrCodeCommandFailed) {
		t.Errorf("error = %v, want COMMAND_FAILED", err)
	}
}

func TestAvailable(t *testing.T) {
	if err := New(".", commandtest.New()).Available(); !errors.Is(err, errors.ErrCodeToolMissing) {
		t.Errorf("Available() = %v, want TOOL_MISSING", err)
	}
	if err := New(".", commandtest.New().Path("git", "/usr/bin/git")).Available(); err != nil {
		t.Errorf("Available() = %v", err)
	}
}

func TestEnsureInitialCommitRealGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New(dir, command.NewExec(nil))
	made, err := g.EnsureInitialCommit(context.Background())
	if err != nil {
		t.Fatalf("EnsureInitialCommit() error: %v", err)
	}
	if !made || !g.HasCommits(context.Background()) {
		t.Error("expected a repository with one commit")
	}

	made, err = g.EnsureInitialCommit(context.Background())
	if err != nil || made {
		t.Errorf("second EnsureInitialCommit() = %v, %v", made, err)
	}
}
