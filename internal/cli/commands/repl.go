package commands

import (
	"fmt"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Long: `Start an interactive prompt. Each line is scanned and parsed on its own
and its syntax tree is printed.

Commands:
  .help     Show help
  .tokens   Print tokens instead of the syntax tree
  .ast      Print the syntax tree
  .quit     Exit

An empty line or Ctrl-D ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunREPL(cmd)
		},
	}

	return cmd
}

// RunREPL starts the interactive prompt on cmd's streams.
func RunREPL(cmd *cobra.Command) error {
	cfg := getConfig(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Lox expression prompt")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, an empty line to exit")

	return newRunner(cmd).RunPrompt(rl)
}
