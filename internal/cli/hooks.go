package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/venvkit/pkg/errors"
	"github.com/matzehuels/venvkit/pkg/observability"
	"github.com/matzehuels/venvkit/pkg/provision"
)

var stepLabels = map[string]string{
	provision.StepPrerequisites: "Checking pyenv and git",
	provision.StepInterpreter:   "Ensuring Python interpreter",
	provision.StepName:          "Choosing environment name",
	provision.StepEnvironment:   "Creating virtualenv",
	provision.StepScaffold:      "Writing project files",
	provision.StepPin:           "Pinning environment to directory",
	provision.StepVCS:           "Initialising git repository",
	provision.StepPackages:      "Installing packages",
	provision.StepHooks:         "Installing pre-commit hooks",
}

// stepLabel renders "[3/9] Choosing environment name".
func stepLabel(step string) string {
	label, ok := stepLabels[step]
	if !ok {
		label = step
	}
	return fmt.Sprintf("[%d/%d] %s", slices.Index(provision.Steps, step)+1, len(provision.Steps), label)
}

// provisionReporter prints one status line per step, with a spinner while a
// step runs when spinTo is set.
type provisionReporter struct {
	ui     *console
	spinTo io.Writer // nil disables the spinner

	mu      sync.Mutex
	spinner *Spinner
}

func (r *provisionReporter) OnStepStart(ctx context.Context, step string) {
	if r.spinTo == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spinner = newSpinner(ctx, r.spinTo, stepLabel(step))
	r.spinner.Start()
}

func (r *provisionReporter) OnStepComplete(_ context.Context, step string, d time.Duration, err error) {
	r.mu.Lock()
	if r.spinner != nil {
		r.spinner.Stop()
		r.spinner = nil
	}
	r.mu.Unlock()

	if err != nil {
		r.ui.failure("%s", stepLabel(step))
		return
	}
	r.ui.success("%s %s", stepLabel(step), StyleDim.Render(d.Round(time.Millisecond).String()))
}

func (r *provisionReporter) OnNameCollision(_ context.Context, requested, chosen string) {
	r.ui.warning("environment %s already exists, using %s", requested, chosen)
}

// reclaimReporter prints the outcome of every deletion.
type reclaimReporter struct {
	observability.NoopReclaimHooks
	ui *console
}

func (r *reclaimReporter) OnDeleteComplete(_ context.Context, name string, _ time.Duration, err error) {
	if err != nil {
		r.ui.failure("Failed to remove %s: %s", StyleHighlight.Render(name), errors.UserMessage(err))
		return
	}
	r.ui.success("Removed %s", StyleHighlight.Render(name))
}
