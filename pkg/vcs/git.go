// Package vcs initialises the project's git repository.
package vcs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/errors"
)

// InitialCommitMessage is used for the first commit of a new project.
const InitialCommitMessage = "Initial commit"

// fallbackIdentity lets the first commit succeed on machines without a
// configured git user. It is passed per-invocation and never written to config.
var fallbackIdentity = []string{
	"GIT_AUTHOR_NAME=venvkit", "GIT_AUTHOR_EMAIL=venvkit@localhost",
	"GIT_COMMITTER_NAME=venvkit", "GIT_COMMITTER_EMAIL=venvkit@localhost",
}

// Git runs git commands in a project directory.
type Git struct {
	Dir    string
	Runner command.Runner
}

// New returns a Git bound to dir.
func New(dir string, r command.Runner) *Git {
	return &Git{Dir: dir, Runner: r}
}

func (g *Git) run(ctx context.Context, env []string, args ...string) ([]byte, error) {
	return g.Runner.Run(ctx, command.Spec{Name: "git", Args: append([]string{"-C", g.Dir}, args...), Env: env})
}

// Available checks that git is on PATH.
func (g *Git) Available() error {
	if _, err := g.Runner.LookPath("git"); err != nil {
		return errors.Wrap(errors.ErrCodeToolMissing, err, "git not found on PATH")
	}
	return nil
}

// IsRepo reports whether Dir already contains a repository.
func (g *Git) IsRepo() bool {
	_, err := os.Stat(filepath.Join(g.Dir, ".git"))
	return err == nil
}

// HasCommits reports whether HEAD resolves.
func (g *Git) HasCommits(ctx context.Context) bool {
	_, err := g.run(ctx, nil, "rev-parse", "--verify", "--quiet", "HEAD")
	return err == nil
}

// EnsureInitialCommit initialises the repository if needed and records one
// commit with everything in Dir when the repository has none. It returns
// whether a commit was made. pre-commit refuses to install hooks outside a
// repository, so this runs before hook installation.
func (g *Git) EnsureInitialCommit(ctx context.Context) (bool, error) {
	if !g.IsRepo() {
		if _, err := g.run(ctx, nil, "init"); err != nil {
			return false, errors.Wrap(errors.ErrCodeCommandFailed, err, "git init in %s", g.Dir)
		}
	}
	if g.HasCommits(ctx) {
		return false, nil
	}

	if _, err := g.run(ctx, nil, "add", "-A"); err != nil {
		return false, errors.Wrap(errors.ErrCodeCommandFailed, err, "git add in %s", g.Dir)
	}

	var env []string
	if !g.hasIdentity(ctx) {
		env = fallbackIdentity
	}
	if _, err := g.run(ctx, env, "commit", "--allow-empty", "-m", InitialCommitMessage); err != nil {
		return false, errors.Wrap(errors.ErrCodeCommandFailed, err, "initial commit in %s", g.Dir)
	}
	return true, nil
}

func (g *Git) hasIdentity(ctx context.Context) bool {
	out, err := g.run(ctx, nil, "config", "user.email")
	return err == nil && len(command.Lines(out)) > 0
}
