package envmgr

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/errors"
)

// InstallerURL is the official pyenv installer script.
const InstallerURL = "https://pyenv.run"

// Pyenv is the Manager backed by the pyenv binary.
type Pyenv struct {
	Bin    string // Path or name of the pyenv binary
	Runner command.Runner
}

// NewPyenv returns a pyenv manager. An empty bin resolves to "pyenv".
func NewPyenv(bin string, r command.Runner) *Pyenv {
	if bin == "" {
		bin = "pyenv"
	}
	return &Pyenv{Bin: bin, Runner: r}
}

func (p *Pyenv) run(ctx context.Context, args ...string) ([]byte, error) {
	return p.Runner.Run(ctx, command.Spec{Name: p.Bin, Args: args})
}

// List implements Manager.
func (p *Pyenv) List(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "virtualenvs", "--bare")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCommandFailed, err, "list environments")
	}
	return command.Lines(out), nil
}

// Create implements Manager.
func (p *Pyenv) Create(ctx context.Context, name, version string) error {
	if _, err := p.run(ctx, "virtualenv", version, name); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "create environment %s (python %s)", name, version)
	}
	return nil
}

// Delete implements Manager.
func (p *Pyenv) Delete(ctx context.Context, name string) error {
	if _, err := p.run(ctx, "virtualenv-delete", "-f", name); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "delete environment %s", name)
	}
	return nil
}

// VersionInstalled implements Manager.
func (p *Pyenv) VersionInstalled(ctx context.Context, version string) (bool, error) {
	out, err := p.run(ctx, "versions", "--bare")
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeCommandFailed, err, "list installed versions")
	}
	return slices.Contains(command.Lines(out), version), nil
}

// InstallVersion implements Manager.
func (p *Pyenv) InstallVersion(ctx context.Context, version string) error {
	if _, err := p.run(ctx, "install", "-s", version); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "install python %s", version)
	}
	return nil
}

// Pin implements Pinner via `pyenv local`.
func (p *Pyenv) Pin(ctx context.Context, dir, name string) error {
	if _, err := p.Runner.Run(ctx, command.Spec{Name: p.Bin, Args: []string{"local", name}, Dir: dir}); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "pin %s to %s", name, dir)
	}
	return nil
}

// Exec implements Executor via `pyenv exec` with PYENV_VERSION selecting env.
func (p *Pyenv) Exec(ctx context.Context, env, dir string, args ...string) error {
	spec := command.Spec{
		Name: p.Bin,
		Args: append([]string{"exec"}, args...),
		Dir:  dir,
		Env:  []string{"PYENV_VERSION=" + env},
	}
	if _, err := p.Runner.Run(ctx, spec); err != nil {
		return errors.Wrap(errors.ErrCodeCommandFailed, err, "%s in %s", strings.Join(args, " "), env)
	}
	return nil
}

// Available checks that pyenv and the virtualenv plugin can be used.
func (p *Pyenv) Available(ctx context.Context) error {
	bin, err := ResolveBinary(p.Runner, p.Bin)
	if err != nil {
		return err
	}
	p.Bin = bin

	out, err := p.run(ctx, "commands")
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolMissing, err, "pyenv is installed but not working")
	}
	if !slices.Contains(command.Lines(out), "virtualenv") {
		return errors.New(errors.ErrCodeToolMissing, "pyenv-virtualenv plugin is not installed")
	}
	return nil
}

// Install runs the pyenv installer script, which also installs the
// pyenv-virtualenv plugin.
func (p *Pyenv) Install(ctx context.Context) error {
	script := "curl -fsSL " + InstallerURL + " | bash"
	if _, err := p.Runner.Run(ctx, command.Spec{Name: "bash", Args: []string{"-c", script}}); err != nil {
		return errors.Wrap(errors.ErrCodeToolMissing, err, "install pyenv")
	}
	return nil
}

// ResolveBinary finds the pyenv binary: an explicit path is used as-is, a bare
// name is looked up on PATH and then under $PYENV_ROOT/bin and ~/.pyenv/bin,
// where a fresh install puts it before the shell profile is reloaded.
func ResolveBinary(r command.Runner, bin string) (string, error) {
	if bin == "" {
		bin = "pyenv"
	}
	if strings.ContainsRune(bin, os.PathSeparator) {
		if _, err := os.Stat(bin); err != nil {
			return "", errors.Wrap(errors.ErrCodeToolMissing, err, "pyenv not found at %s", bin)
		}
		return bin, nil
	}
	if path, err := r.LookPath(bin); err == nil {
		return path, nil
	}
	for _, root := range rootCandidates() {
		candidate := filepath.Join(root, "bin", bin)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.New(errors.ErrCodeToolMissing, "%s not found on PATH", bin)
}

func rootCandidates() []string {
	var roots []string
	if root := os.Getenv("PYENV_ROOT"); root != "" {
		roots = append(roots, root)
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, ".pyenv"))
	}
	return roots
}
