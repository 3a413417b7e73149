// Package provision creates a ready-to-use Python project: interpreter,
// virtualenv, project skeleton, pin file, git repository, packages and
// commit hooks, in that order.
//
// Inputs are validated before the first side effect, so a bad flag or an
// unreadable requirements file leaves nothing behind. After that the steps
// run strictly in sequence and the first failure aborts the run; work already
// done (an installed interpreter, a created environment) is not undone.
package provision

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/errors"
	"github.com/matzehuels/venvkit/pkg/naming"
	"github.com/matzehuels/venvkit/pkg/observability"
	"github.com/matzehuels/venvkit/pkg/requirements"
	"github.com/matzehuels/venvkit/pkg/scaffold"
	"github.com/matzehuels/venvkit/pkg/vcs"
)

// Step names, in execution order.
const (
	StepPrerequisites = "prerequisites"
	StepInterpreter   = "interpreter"
	StepName          = "name"
	StepEnvironment   = "environment"
	StepScaffold      = "scaffold"
	StepPin           = "pin"
	StepVCS           = "vcs"
	StepPackages      = "packages"
	StepHooks         = "hooks"
)

// Steps lists every step name in order.
var Steps = []string{
	StepPrerequisites, StepInterpreter, StepName, StepEnvironment,
	StepScaffold, StepPin, StepVCS, StepPackages, StepHooks,
}

// Toolchain is the installable environment manager itself.
type Toolchain interface {
	Available(ctx context.Context) error
	Install(ctx context.Context) error
}

// Options are the provisioner's inputs.
type Options struct {
	Directory     string   // Project root; created if missing
	Name          string   // Requested environment name; empty uses the directory base name
	PythonVersion string   // Interpreter version tag
	Requirements  string   // Optional requirements file
	Baseline      []string // Packages installed when Requirements is empty
	Author        string   // Written into pyproject.toml
}

// Result describes a finished run.
type Result struct {
	Directory     string
	Requested     string
	Name          string
	Collided      bool
	PythonVersion string
	Installed     bool // Interpreter had to be installed
	Files         *scaffold.WriteReport
	Committed     bool
	Packages      []string // Packages requested from pip (requirements or baseline)
	FromFile      string   // Requirements file, if used
	Duration      time.Duration
}

// Provisioner runs the provisioning steps against an environment manager.
type Provisioner struct {
	Manager   envmgr.Manager
	Pinner    envmgr.Pinner
	Executor  envmgr.Executor
	Toolchain Toolchain      // nil skips the manager bootstrap check
	Runner    command.Runner // Runs git
	Suffix    naming.SuffixSource
	Logger    *log.Logger
}

// state carries values between steps.
type state struct {
	opts   Options
	reqs   *requirements.File
	result *Result
}

// Run validates opts and executes every step.
func (p *Provisioner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if p.Logger == nil {
		p.Logger = log.Default()
	}

	st, err := p.prepare(opts)
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		fn   func(context.Context, *state) error
	}{
		{StepPrerequisites, p.checkPrerequisites},
		{StepInterpreter, p.ensureInterpreter},
		{StepName, p.resolveName},
		{StepEnvironment, p.createEnv},
		{StepScaffold, p.writeProject},
		{StepPin, p.pinEnv},
		{StepVCS, p.initRepo},
		{StepPackages, p.installPackages},
		{StepHooks, p.installHooks},
	}
	for _, s := range steps {
		if err := p.step(ctx, s.name, st, s.fn); err != nil {
			return st.result, err
		}
	}

	st.result.Duration = time.Since(start)
	p.Logger.Info("environment ready", "name", st.result.Name, "python", st.result.PythonVersion,
		"dir", st.result.Directory, "duration", st.result.Duration.Round(time.Millisecond))
	return st.result, nil
}

func (p *Provisioner) step(ctx context.Context, name string, st *state, fn func(context.Context, *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	hooks := observability.Provision()
	hooks.OnStepStart(ctx, name)
	p.Logger.Debug("step started", "step", name)

	start := time.Now()
	err := fn(ctx, st)
	elapsed := time.Since(start)
	hooks.OnStepComplete(ctx, name, elapsed, err)

	if err != nil {
		p.Logger.Debug("step failed", "step", name, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	p.Logger.Debug("step done", "step", name, "duration", elapsed.Round(time.Millisecond))
	return nil
}

// prepare validates everything that can be checked without side effects.
func (p *Provisioner) prepare(opts Options) (*state, error) {
	if opts.Directory == "" {
		opts.Directory = "."
	}
	if err := errors.ValidateDirectory(opts.Directory); err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", opts.Directory)
	}
	opts.Directory = dir

	if opts.PythonVersion == "" {
		opts.PythonVersion = scaffold.DefaultPythonVersion
	}
	if err := errors.ValidatePythonVersion(opts.PythonVersion); err != nil {
		return nil, err
	}

	if opts.Name == "" {
		opts.Name = filepath.Base(dir)
	}
	if err := errors.ValidateEnvName(opts.Name); err != nil {
		return nil, err
	}

	st := &state{
		opts: opts,
		result: &Result{
			Directory:     dir,
			Requested:     opts.Name,
			PythonVersion: opts.PythonVersion,
		},
	}

	if opts.Requirements != "" {
		path, err := filepath.Abs(opts.Requirements)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", opts.Requirements)
		}
		if st.reqs, err = requirements.Load(path); err != nil {
			return nil, err
		}
		st.result.FromFile = path
		st.result.Packages = st.reqs.Packages
	} else {
		if len(opts.Baseline) == 0 {
			st.opts.Baseline = scaffold.DevDependencies
		}
		for _, pkg := range st.opts.Baseline {
			if err := errors.ValidatePythonPackageName(pkg); err != nil {
				return nil, err
			}
		}
		st.result.Packages = st.opts.Baseline
	}
	return st, nil
}

func (p *Provisioner) checkPrerequisites(ctx context.Context, st *state) error {
	if p.Toolchain != nil {
		if err := p.Toolchain.Available(ctx); err != nil {
			if !errors.Is(err, errors.ErrCodeToolMissing) {
				return err
			}
			p.Logger.Warn("environment manager missing, installing", "reason", errors.UserMessage(err))
			if err := p.Toolchain.Install(ctx); err != nil {
				return err
			}
			if err := p.Toolchain.Available(ctx); err != nil {
				return errors.Wrap(errors.ErrCodeToolMissing, err, "environment manager still unavailable after install")
			}
		}
	}
	return vcs.New(st.opts.Directory, p.Runner).Available()
}

func (p *Provisioner) ensureInterpreter(ctx context.Context, st *state) error {
	version := st.opts.PythonVersion
	ok, err := p.Manager.VersionInstalled(ctx, version)
	if err != nil {
		return err
	}
	if ok {
		p.Logger.Debug("python already installed", "version", version)
		return nil
	}
	p.Logger.Info("installing python", "version", version)
	if err := p.Manager.InstallVersion(ctx, version); err != nil {
		return err
	}
	st.result.Installed = true
	return nil
}

func (p *Provisioner) resolveName(ctx context.Context, st *state) error {
	r := &naming.Resolver{Manager: p.Manager, Source: p.Suffix}
	name, collided, err := r.Resolve(ctx, st.opts.Name)
	if err != nil {
		return err
	}
	if collided {
		observability.Provision().OnNameCollision(ctx, st.opts.Name, name)
		p.Logger.Warn("environment name taken, using generated name", "requested", st.opts.Name, "name", name)
	}
	st.result.Name = name
	st.result.Collided = collided
	return nil
}

func (p *Provisioner) createEnv(ctx context.Context, st *state) error {
	p.Logger.Info("creating environment", "name", st.result.Name, "python", st.opts.PythonVersion)
	return p.Manager.Create(ctx, st.result.Name, st.opts.PythonVersion)
}

func (p *Provisioner) writeProject(_ context.Context, st *state) error {
	project := filepath.Base(st.opts.Directory)
	c := scaffold.NewContext(project, st.result.Name, st.opts.PythonVersion, st.opts.Author)

	files, err := scaffold.Files(c)
	if err != nil {
		return err
	}
	report, err := scaffold.Write(st.opts.Directory, scaffold.Dirs(c), files)
	if err != nil {
		return err
	}
	st.result.Files = report
	for _, path := range report.Skipped {
		p.Logger.Debug("kept existing file", "path", path)
	}
	return nil
}

func (p *Provisioner) pinEnv(ctx context.Context, st *state) error {
	return p.Pinner.Pin(ctx, st.opts.Directory, st.result.Name)
}

func (p *Provisioner) initRepo(ctx context.Context, st *state) error {
	committed, err := vcs.New(st.opts.Directory, p.Runner).EnsureInitialCommit(ctx)
	if err != nil {
		return err
	}
	st.result.Committed = committed
	return nil
}

func (p *Provisioner) installPackages(ctx context.Context, st *state) error {
	name, dir := st.result.Name, st.opts.Directory

	if err := p.Executor.Exec(ctx, name, dir, "pip", "install", "--upgrade", "pip"); err != nil {
		return err
	}

	if st.reqs != nil {
		p.Logger.Info("installing requirements", "file", st.result.FromFile, "packages", st.reqs.Count())
		if err := p.Executor.Exec(ctx, name, dir, "pip", "install", "-r", st.result.FromFile); err != nil {
			return err
		}
		// Hook installation needs pre-commit even when the file omits it.
		if !slices.Contains(st.reqs.Packages, "pre-commit") {
			return p.Executor.Exec(ctx, name, dir, "pip", "install", "pre-commit")
		}
		return nil
	}

	p.Logger.Info("installing baseline toolset", "packages", st.opts.Baseline)
	args := append([]string{"pip", "install"}, st.opts.Baseline...)
	if err := p.Executor.Exec(ctx, name, dir, args...); err != nil {
		return err
	}
	if !slices.Contains(st.opts.Baseline, "pre-commit") {
		return p.Executor.Exec(ctx, name, dir, "pip", "install", "pre-commit")
	}
	return nil
}

func (p *Provisioner) installHooks(ctx context.Context, st *state) error {
	return p.Executor.Exec(ctx, st.result.Name, st.opts.Directory, "pre-commit", "install")
}
