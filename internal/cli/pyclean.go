package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/venvkit/pkg/buildinfo"
	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/observability"
	"github.com/matzehuels/venvkit/pkg/reclaim"
)

// ReclaimCommand creates the pyclean root command.
func (c *CLI) ReclaimCommand() *cobra.Command {
	var opts reclaim.Options

	cmd, root := c.newRoot(&cobra.Command{
		Use:   "pyclean",
		Short: "List and remove pyenv virtualenvs",
		Long: `pyclean lists pyenv virtualenvs and removes a chosen subset.

Exactly one mode applies; when several are given the first of --list, --all,
--prefix, --name, --interactive wins. Every removal is confirmed once unless
--force is set. A failed removal is reported and the rest still run.`,
		Example: `  pyclean -l
  pyclean -p test-env- -f
  pyclean -n old-project
  pyclean -i`,
		Version: buildinfo.Version,
	})
	cmd.SetVersionTemplate(buildinfo.Template())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return c.runReclaim(cmd, root.config, opts)
	}

	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "list virtualenvs")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "remove every virtualenv")
	cmd.Flags().StringVarP(&opts.Prefix, "prefix", "p", "", "remove virtualenvs whose name starts with `PREFIX`")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "remove the virtualenv called `NAME`")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "choose virtualenvs to remove from a list")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "skip the confirmation prompt")

	complete := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return c.completeNames(cmd.Context(), root.config), cobra.ShellCompDirectiveNoFileComp
	}
	_ = cmd.RegisterFlagCompletionFunc("name", complete)
	_ = cmd.RegisterFlagCompletionFunc("prefix", complete)

	cmd.AddCommand(c.completionCommand())

	return cmd
}

// completeNames lists virtualenvs for shell completion; errors yield nothing.
func (c *CLI) completeNames(ctx context.Context, configPath string) []string {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil
	}
	names, err := envmgr.Names(ctx, c.backend(cfg).Manager)
	if err != nil {
		return nil
	}
	return names
}

func (c *CLI) runReclaim(cmd *cobra.Command, configPath string, opts reclaim.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	ui := c.ui()

	if mode, _ := opts.Mode(); mode == reclaim.ModeNone {
		return cmd.Usage()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	be := c.backend(cfg)
	if be.Toolchain != nil {
		if err := be.Toolchain.Available(ctx); err != nil {
			return err
		}
	}

	plan, err := reclaim.NewPlan(ctx, be.Manager, opts)
	if err != nil {
		return err
	}
	logger.Debug("listed virtualenvs", "mode", plan.Mode, "count", len(plan.Names))

	if len(plan.Names) == 0 {
		ui.info("No virtualenvs found")
		return nil
	}

	var targets []string
	switch plan.Mode {
	case reclaim.ModeList:
		ui.envTable(plan.Names)
		return nil
	case reclaim.ModeInteractive:
		var ok bool
		if targets, ok, err = c.selectTargets(ctx, plan.Names); err != nil || !ok {
			return err
		}
	default:
		if plan.Targets.NotFound != "" {
			ui.warning("Virtualenv %s not found", plan.Targets.NotFound)
			return nil
		}
		if plan.Targets.Empty() {
			ui.info("No virtualenvs start with %q", plan.Arg)
			return nil
		}
		targets = plan.Targets.Names
	}

	if !opts.Force {
		ok, err := c.confirmTargets(ctx, targets)
		if err != nil || !ok {
			return err
		}
	}

	observability.SetReclaimHooks(&reclaimReporter{ui: ui})
	defer observability.SetReclaimHooks(observability.NoopReclaimHooks{})

	prog := newProgress(logger)
	res := reclaim.DeleteAll(ctx, be.Manager, targets)
	prog.done(fmt.Sprintf("Removed %d of %d virtualenvs", len(res.Deleted), len(targets)))

	if len(res.Failed) > 0 {
		ui.warning("%d virtualenv(s) could not be removed", len(res.Failed))
	}
	if len(res.Skipped) > 0 {
		ui.warning("Interrupted, %d virtualenv(s) left untouched", len(res.Skipped))
		return ctx.Err()
	}
	return nil
}

// selectTargets asks for a selection. ok is false when the operator quit or
// chose nothing.
func (c *CLI) selectTargets(ctx context.Context, names []string) ([]string, bool, error) {
	ui := c.ui()
	input, err := c.prompter().Select(ctx, names)
	if err != nil {
		return nil, false, err
	}

	sel := reclaim.ParseSelection(input, names)
	if sel.Cancelled {
		ui.info("Operation cancelled")
		return nil, false, nil
	}
	for _, tok := range sel.Invalid {
		ui.warning("Ignoring invalid selection %q", tok)
	}
	if len(sel.Names) == 0 {
		ui.info("Nothing selected")
		return nil, false, nil
	}
	return sel.Names, true, nil
}

func (c *CLI) confirmTargets(ctx context.Context, targets []string) (bool, error) {
	ui := c.ui()
	ui.info("The following virtualenvs will be removed:")
	for _, name := range targets {
		ui.detail("%s", name)
	}

	ok, err := c.prompter().Confirm(ctx, fmt.Sprintf("Remove %d virtualenv(s)?", len(targets)))
	if err != nil {
		return false, err
	}
	if !ok {
		ui.info("Operation cancelled")
	}
	return ok, nil
}
