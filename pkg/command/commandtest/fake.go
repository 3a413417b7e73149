// Package commandtest provides a scripted command.Runner for tests.
package commandtest

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/errors"
)

// Response is the canned result for one command line.
type Response struct {
	Output string
	Fail   bool
}

// Runner answers commands from a table keyed by the command line
// ("git init", "pyenv versions --bare"). Unknown commands succeed with no
// output. Every call is recorded in order.
type Runner struct {
	mu        sync.Mutex
	responses map[string][]Response
	paths     map[string]string
	calls     []command.Spec
}

// New returns an empty fake runner.
func New() *Runner {
	return &Runner{
		responses: make(map[string][]Response),
		paths:     make(map[string]string),
	}
}

// On queues a response for the given command line. Multiple responses for
// the same line are consumed in order; the last one sticks.
func (r *Runner) On(line string, resp Response) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[line] = append(r.responses[line], resp)
	return r
}

// Path makes LookPath(name) succeed with the given path.
func (r *Runner) Path(name, path string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[name] = path
	return r
}

// Run implements command.Runner.
func (r *Runner) Run(ctx context.Context, s command.Spec) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)

	line := s.String()
	queue := r.responses[line]
	if len(queue) == 0 {
		return nil, nil
	}
	resp := queue[0]
	if len(queue) > 1 {
		r.responses[line] = queue[1:]
	}
	if resp.Fail {
		return []byte(resp.Output), &errors.CommandError{
			Name:   s.Name,
			Args:   s.Args,
			Output: resp.Output,
			Err:    fmt.Errorf("exit status 1"),
		}
	}
	return []byte(resp.Output), nil
}

// LookPath implements command.Runner.
func (r *Runner) LookPath(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Calls returns the recorded command lines.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.String()
	}
	return out
}

// Specs returns the recorded invocations.
func (r *Runner) Specs() []command.Spec {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]command.Spec(nil), r.calls...)
}

// Called reports whether a command line starting with prefix was run.
func (r *Runner) Called(prefix string) bool {
	for _, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}
