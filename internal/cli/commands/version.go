package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the lox version and the Go toolchain it was built with.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lox v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Lox expression front-end built with %s\n", runtime.Version())
		},
	}
}
