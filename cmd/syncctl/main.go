// Package main is the entry point for syncctl.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/storesync/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cmd := cli.NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		format, _ := cmd.PersistentFlags().GetString("format")
		cli.WriteError(os.Stderr, format, err)
	}
	os.Exit(cli.GetExitCode(err))
}
