// Package cli provides the command-line interface for lox.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/commands"
	"github.com/leapstack-labs/lox/internal/cli/config"
	"github.com/leapstack-labs/lox/internal/lox"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	return newRoot().cmd
}

// root pairs the root command with the log file its pre-run hook opens.
type root struct {
	cmd       *cobra.Command
	logCloser io.Closer
}

func newRoot() *root {
	var cfgFile string
	r := &root{}

	rootCmd := &cobra.Command{
		Use:   "lox [script]",
		Short: "lox - Lox expression front-end",
		Long: `lox scans and parses Lox expressions and prints their syntax trees.

With a script argument the script is run once. Without arguments an
interactive prompt is started.`,
		Example: `  # Print the syntax tree of a script
  lox expr.lox

  # Start the interactive prompt
  lox`,
		Version: Version,
		Args:    usageArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return &lox.ExitError{Code: lox.ExitUsage, Err: err}
			}

			logger, closer, err := config.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return &lox.ExitError{Code: lox.ExitIOError, Err: err}
			}
			r.logCloser = closer

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			ctx = config.WithConfig(ctx, cfg)
			cmd.SetContext(ctx)

			if file := config.GetConfigFileUsed(); file != "" {
				logger.Debug("using config file", "path", file)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return commands.RunScript(cmd, args[0])
			}
			return commands.RunREPL(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &lox.ExitError{Code: lox.ExitUsage, Err: err}
	})
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./lox.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json|yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputModes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.LogLevels, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewASTCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewLSPCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	r.cmd = rootCmd
	return r
}

// execute runs the command and reports its error. The log file is closed on
// every path, including RunE errors, where cobra skips post-run hooks.
func (r *root) execute(ctx context.Context) error {
	defer r.closeLog()

	err := r.cmd.ExecuteContext(ctx)
	if err != nil {
		reportError(r.cmd, err)
	}
	return err
}

func (r *root) closeLog() {
	if r.logCloser == nil {
		return
	}
	if err := r.logCloser.Close(); err != nil {
		_, _ = fmt.Fprintf(r.cmd.ErrOrStderr(), "Error: failed to close log file: %v\n", err)
	}
}

// usageArgs accepts at most one script argument. More is a usage error.
func usageArgs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return &lox.ExitError{Code: lox.ExitUsage, Err: errors.New("usage: lox [script]")}
	}
	return nil
}

// Execute runs the root command. Errors are printed unless they were
// already reported as diagnostics.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return newRoot().execute(ctx)
}

func reportError(cmd *cobra.Command, err error) {
	var exitErr *lox.ExitError
	if errors.As(err, &exitErr) && exitErr.Silent() {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return lox.ExitOK
	}
	var exitErr *lox.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for lox.

To load completions:

Bash:
  $ source <(lox completion bash)

Zsh:
  $ lox completion zsh > "${fpath[1]}/_lox"

Fish:
  $ lox completion fish | source

PowerShell:
  PS> lox completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
