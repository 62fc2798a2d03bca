package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/config"
	"github.com/leapstack-labs/lox/internal/cli/output"
	"github.com/leapstack-labs/lox/internal/lox"
	"github.com/leapstack-labs/lox/pkg/format"
)

// ASTOptions holds options for the ast command.
type ASTOptions struct {
	Format string
}

// NewASTCommand creates the ast command.
func NewASTCommand() *cobra.Command {
	opts := &ASTOptions{}

	cmd := &cobra.Command{
		Use:   "ast <script|->",
		Short: "Print the syntax tree of a script",
		Long: `Parse a script and print its syntax tree.

The prefix format prints a fully parenthesized form such as
(* (- 123) (group 12.5)). The tree format draws one node per line.
Use --output json or yaml for a machine-readable document.`,
		Example: `  lox ast expr.lox
  lox ast expr.lox --format tree
  echo '-123 * (12.5)' | lox ast - -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Tree format (prefix|tree), default from config")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.ASTFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runAST(cmd *cobra.Command, path string, opts *ASTOptions) error {
	cfg := getConfig(cmd)
	r := newRenderer(cmd, cfg)

	astFormat := opts.Format
	if astFormat == "" {
		astFormat = cfg.ASTFormat
	}
	if !slices.Contains(config.ASTFormats, astFormat) {
		return &lox.ExitError{
			Code: lox.ExitUsage,
			Err:  fmt.Errorf("invalid --format %q (expected one of %s)", astFormat, strings.Join(config.ASTFormats, ", ")),
		}
	}

	source, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	res := newRunner(cmd).Compile(source)
	if res.HadError() || res.Expr == nil {
		return dataError()
	}

	if ok, err := r.Structured(format.Encode(res.Expr)); ok {
		return err
	}

	var text string
	switch astFormat {
	case "tree":
		text = format.Tree(res.Expr)
	default:
		text = format.Print(res.Expr)
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("```")
		r.Println(strings.TrimRight(text, "\n"))
		r.Println("```")
		return nil
	}
	r.Println(strings.TrimRight(text, "\n"))
	return nil
}
