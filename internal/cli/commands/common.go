// Package commands implements the lox subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/config"
	"github.com/leapstack-labs/lox/internal/cli/output"
	"github.com/leapstack-labs/lox/internal/lox"
)

// getConfig returns the config loaded by the root command, or defaults when
// the command runs on its own (as in tests).
func getConfig(cmd *cobra.Command) *config.Config {
	return config.GetConfig(cmd.Context())
}

// newRenderer creates a renderer for cmd honouring the output and colour
// settings.
func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ParseMode(cfg.Output))
	if cfg.NoColor {
		r.SetNoColor(true)
	}
	return r
}

// newRunner creates a driver writing results to cmd's stdout and
// diagnostics to its stderr.
func newRunner(cmd *cobra.Command, opts ...lox.Option) *lox.Runner {
	base := []lox.Option{
		lox.WithLogger(config.GetLogger(cmd.Context())),
		lox.WithDiagnosticsWriter(cmd.ErrOrStderr()),
	}
	return lox.NewRunner(cmd.OutOrStdout(), append(base, opts...)...)
}

// readScript reads path, with "-" meaning the command's stdin.
func readScript(cmd *cobra.Command, path string) (string, error) {
	return lox.ReadSource(path, cmd.InOrStdin())
}

// dataError is returned after diagnostics were already printed.
func dataError() error {
	return &lox.ExitError{Code: lox.ExitDataError}
}

// withoutDiagnosticsEcho keeps diagnostics out of stderr so they can be
// rendered as part of a structured document.
func withoutDiagnosticsEcho() lox.Option {
	return lox.WithDiagnosticsWriter(nil)
}
