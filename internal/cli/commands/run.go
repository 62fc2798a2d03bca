package commands

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script",
		Long: `Scan and parse a script, printing its syntax tree.

Errors are reported as "[line N] Error: message" on stderr. The command
exits with status 65 when the script has errors and 74 when it cannot be
read.`,
		Example: `  # Print the syntax tree of a script
  lox run expr.lox

  # Read the script from stdin
  echo '1 + 2' | lox run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunScript(cmd, args[0])
		},
	}

	return cmd
}

// RunScript runs the script at path with cmd's streams.
func RunScript(cmd *cobra.Command, path string) error {
	if path == "-" {
		source, err := readScript(cmd, path)
		if err != nil {
			return err
		}
		return runSource(cmd, source)
	}
	return newRunner(cmd).RunFile(path)
}

func runSource(cmd *cobra.Command, source string) error {
	if res := newRunner(cmd).Run(source); res.HadError() {
		return dataError()
	}
	return nil
}
