package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/lox/internal/cli/output"
	"github.com/leapstack-labs/lox/pkg/diag"
	"github.com/leapstack-labs/lox/pkg/token"
)

// TokensOutput is the structured form of the tokens command.
type TokensOutput struct {
	File        string        `json:"file" yaml:"file"`
	Tokens      []token.Token `json:"tokens" yaml:"tokens"`
	Diagnostics []diag.Entry  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <script|->",
		Short: "Print the token stream of a script",
		Long: `Scan a script and print its tokens.

On a terminal the tokens are shown as a table; when piped each token is
printed as "TYPE lexeme literal". Use --output json or yaml for a
machine-readable document.`,
		Example: `  lox tokens expr.lox
  echo '(1 + 2) * 3' | lox tokens -
  lox tokens expr.lox -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}

	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
	cfg := getConfig(cmd)
	r := newRenderer(cmd, cfg)

	source, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	runner := newRunner(cmd)
	if r.EffectiveMode().IsStructured() {
		// Diagnostics go into the document instead of stderr.
		runner = newRunner(cmd, withoutDiagnosticsEcho())
	}
	res := runner.Compile(source)

	doc := TokensOutput{File: path, Tokens: res.Tokens, Diagnostics: res.Diagnostics.Entries()}
	if ok, err := r.Structured(doc); ok {
		if err != nil {
			return err
		}
	} else {
		renderTokens(r, doc)
	}

	if res.HadError() {
		return dataError()
	}
	return nil
}

func renderTokens(r *output.Renderer, doc TokensOutput) {
	mode := r.EffectiveMode()
	if mode == output.ModeText && !r.IsTTY() {
		for _, tok := range doc.Tokens {
			r.Println(tok.String())
		}
		return
	}

	if mode == output.ModeMarkdown {
		r.Header(1, "Tokens: "+doc.File)
		r.Println("")
	}

	rows := make([]table.Row, 0, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		rows = append(rows, table.Row{tok.Line, tok.Type.String(), tok.Lexeme, tok.Literal})
	}
	r.Table(table.Row{"Line", "Type", "Lexeme", "Literal"}, rows)
}
