// Package main provides the lox command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/leapstack-labs/lox/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()
	os.Exit(cli.ExitCode(err))
}
