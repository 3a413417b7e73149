// Package command runs external tools (pyenv, git, pip, the pyenv installer)
// behind a small interface so orchestration code can be tested without them.
package command

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/venvkit/pkg/errors"
)

// Spec describes one process invocation.
type Spec struct {
	Name string   // Binary name or path
	Args []string // Arguments
	Dir  string   // Working directory; empty means the current one
	Env  []string // Extra KEY=VALUE pairs appended to the inherited environment
}

// String renders the invocation the way an operator would type it.
func (s Spec) String() string {
	return strings.TrimSpace(s.Name + " " + strings.Join(s.Args, " "))
}

// Runner executes commands and resolves binaries.
type Runner interface {
	// Run blocks until the process exits and returns its combined output.
	// A non-zero exit is reported as *errors.CommandError.
	Run(ctx context.Context, s Spec) ([]byte, error)

	// LookPath resolves a binary name the same way exec.LookPath does.
	LookPath(name string) (string, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct {
	Logger *log.Logger
}

// NewExec returns an os/exec runner that logs each invocation at debug level.
func NewExec(logger *log.Logger) *Exec {
	if logger == nil {
		logger = log.Default()
	}
	return &Exec{Logger: logger}
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, s Spec) ([]byte, error) {
	e.Logger.Debug("exec", "cmd", s.String(), "dir", s.Dir)

	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	cmd.Dir = s.Dir
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		return out, &errors.CommandError{
			Name:   s.Name,
			Args:   s.Args,
			Output: strings.TrimSpace(string(out)),
			Err:    err,
		}
	}
	return out, nil
}

// LookPath implements Runner.
func (e *Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Lines splits command output into trimmed, non-empty lines.
func Lines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
