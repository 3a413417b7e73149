package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/venvkit/internal/cli"
	"github.com/matzehuels/venvkit/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "Error:", errors.UserMessage(err))
		var cmdErr *errors.CommandError
		if stderrors.As(err, &cmdErr) && cmdErr.Output != "" {
			fmt.Fprintln(os.Stderr, cmdErr.Output)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	return c.ReclaimCommand().ExecuteContext(ctx)
}
