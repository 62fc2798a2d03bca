package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/config"
	"github.com/leapstack-labs/lox/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC and publishes
scan and parse errors as diagnostics while documents are edited.`,
		Example: `  # Start LSP server (usually called by an editor)
  lox lsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd)
		},
	}

	return cmd
}

func runLSP(cmd *cobra.Command) error {
	logger := config.GetLogger(cmd.Context())
	server := lsp.NewServerWithLogger(cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return server.Run()
}
