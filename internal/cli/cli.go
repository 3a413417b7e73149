// Package cli implements the pyinit and pyclean command-line interfaces.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/venvkit/pkg/command"
	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/naming"
	"github.com/matzehuels/venvkit/pkg/provision"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "venvkit"

	// configEnv overrides the config file location.
	configEnv = "VENVKIT_CONFIG"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// Backend
// =============================================================================

// Backend bundles the collaborators the commands drive.
type Backend struct {
	Manager   envmgr.Manager
	Pinner    envmgr.Pinner
	Executor  envmgr.Executor
	Toolchain provision.Toolchain // nil skips the pyenv availability check
	Runner    command.Runner
}

// BackendFactory builds a Backend for the loaded configuration.
type BackendFactory func(cfg *Config, logger *log.Logger) *Backend

// PyenvBackend drives the real pyenv binary.
func PyenvBackend(cfg *Config, logger *log.Logger) *Backend {
	runner := command.NewExec(logger)
	py := envmgr.NewPyenv(cfg.Pyenv, runner)
	return &Backend{Manager: py, Pinner: py, Executor: py, Toolchain: py, Runner: runner}
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Stdout io.Writer
	Stdin  io.Reader

	// Terminal enables spinners and the full-screen picker.
	Terminal bool

	Backend BackendFactory
	Suffix  naming.SuffixSource // nil draws random suffixes

	prompt prompter
}

// New creates a new CLI instance with a default logger on stderr.
func New(stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(stderr, level),
		Stdout:   stdout,
		Stdin:    os.Stdin,
		Terminal: isTerminal(os.Stdin) && isTerminal(os.Stdout),
		Backend:  PyenvBackend,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

func (c *CLI) ui() *console {
	return &console{w: c.Stdout}
}

func (c *CLI) backend(cfg *Config) *Backend {
	if c.Backend == nil {
		return PyenvBackend(cfg, c.Logger)
	}
	return c.Backend(cfg, c.Logger)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
