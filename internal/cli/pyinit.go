package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/venvkit/pkg/buildinfo"
	"github.com/matzehuels/venvkit/pkg/observability"
	"github.com/matzehuels/venvkit/pkg/provision"
	"github.com/matzehuels/venvkit/pkg/scaffold"
)

type provisionFlags struct {
	python       string
	directory    string
	name         string
	requirements string
}

// ProvisionCommand creates the pyinit root command.
func (c *CLI) ProvisionCommand() *cobra.Command {
	var flags provisionFlags

	cmd, root := c.newRoot(&cobra.Command{
		Use:   "pyinit",
		Short: "Create a Python project with its own pyenv virtualenv",
		Long: `pyinit bootstraps a Python project in a directory.

It installs the requested interpreter with pyenv if needed, creates a
virtualenv (falling back to a generated env-XXXXXXXX name when the requested
one is taken), writes a src/ layout with pyproject.toml, ruff, mypy and
pre-commit configuration, pins the environment with "pyenv local", makes an
initial git commit, installs packages and sets up the pre-commit hooks.`,
		Example: `  pyinit
  pyinit -d myproject -v 3.11.9
  pyinit -n api-env -r requirements.txt`,
		Args: noArgs,
	})
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.runProvision(cmd, root.config, flags)
	}

	cmd.Flags().StringVarP(&flags.python, "version", "v", scaffold.DefaultPythonVersion, "Python version to install and use")
	cmd.Flags().StringVarP(&flags.directory, "directory", "d", ".", "project directory (created if missing)")
	cmd.Flags().StringVarP(&flags.name, "name", "n", "", "virtualenv name (default: directory name)")
	cmd.Flags().StringVarP(&flags.requirements, "requirements", "r", "", "requirements file to install instead of the baseline toolset")

	return cmd
}

func (c *CLI) runProvision(cmd *cobra.Command, configPath string, flags provisionFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Debug("pyinit", buildinfo.Fields()...)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	python := flags.python
	if !cmd.Flags().Changed("version") && cfg.PythonVersion != "" {
		python = cfg.PythonVersion
	}

	be := c.backend(cfg)
	ui := c.ui()
	reporter := &provisionReporter{ui: ui}
	if c.Terminal {
		reporter.spinTo = os.Stderr
	}
	observability.SetProvisionHooks(reporter)
	defer observability.SetProvisionHooks(observability.NoopProvisionHooks{})

	p := &provision.Provisioner{
		Manager:   be.Manager,
		Pinner:    be.Pinner,
		Executor:  be.Executor,
		Toolchain: be.Toolchain,
		Runner:    be.Runner,
		Suffix:    c.Suffix,
		Logger:    logger,
	}
	res, err := p.Run(ctx, provision.Options{
		Directory:     flags.directory,
		Name:          flags.name,
		PythonVersion: python,
		Requirements:  flags.requirements,
		Baseline:      cfg.Baseline,
		Author:        cfg.Author,
	})
	if err != nil {
		return err
	}

	c.printProvisionSummary(res)
	return nil
}

func (c *CLI) printProvisionSummary(res *provision.Result) {
	ui := c.ui()
	ui.newline()
	ui.success("Environment %s is ready", StyleHighlight.Render(res.Name))
	ui.keyValue("Directory", res.Directory)
	ui.keyValue("Python", res.PythonVersion)
	if res.Collided {
		ui.keyValue("Requested", res.Requested+" (taken)")
	}
	if res.FromFile != "" {
		ui.keyValue("Packages", fmt.Sprintf("%d from %s", len(res.Packages), filepath.Base(res.FromFile)))
	} else {
		ui.keyValue("Packages", fmt.Sprintf("%d baseline", len(res.Packages)))
	}
	if res.Files != nil {
		ui.keyValue("Files", fmt.Sprintf("%d written, %d kept", len(res.Files.Written), len(res.Files.Skipped)))
	}
	ui.newline()
	ui.nextStep("Start working", "cd "+res.Directory)
}
