package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/venvkit/pkg/errors"
)

// rootFlags are shared by both binaries.
type rootFlags struct {
	verbose bool
	config  string
}

// newRoot builds a root command with the shared --verbose and --config flags.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose: debug level
//
// The logger is attached to the command context and reachable from RunE via
// loggerFromContext. Errors are returned to main, which prints them once.
func (c *CLI) newRoot(cmd *cobra.Command) (*cobra.Command, *rootFlags) {
	flags := &rootFlags{}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if flags.verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}
	cmd.SetFlagErrorFunc(usageError)

	cmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default: $XDG_CONFIG_HOME/venvkit/config.toml)")

	return cmd, flags
}

// usageError prints the command usage and turns err into an INVALID_INPUT
// error, so bad invocations exit non-zero.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return errors.New(errors.ErrCodeInvalidInput, "%s", err.Error())
}

// noArgs rejects positional arguments with usage output.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(cmd, err)
	}
	return nil
}
