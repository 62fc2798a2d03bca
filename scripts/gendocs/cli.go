package main

import (
	"cmp"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/lox/internal/cli"
	"github.com/leapstack-labs/lox/internal/lox"
)

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rootCmd := cli.NewRootCmd()

	if err := generateCLIIndex(rootCmd, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, cmd := range visibleCommands(rootCmd) {
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}

	return nil
}

// generateCLIIndex generates the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for lox")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(rootCmd.Long)

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/lox/cmd/lox@latest")

	w.Header(2, "Basic Usage")
	w.CodeBlock("bash", "lox [script]\nlox <command> [options]")

	w.Header(2, "Commands")

	headers := []string{"Command", "Description"}
	var rows [][]string

	for _, cmd := range visibleCommands(rootCmd) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}

	w.Table(headers, rows)

	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph("Every configuration key can be set through a `LOX_` environment variable:")

	var envRows [][]string
	for _, f := range configFields() {
		envRows = append(envRows, []string{InlineCode(f.EnvVar()), f.Description})
	}
	envRows = append(envRows, []string{InlineCode("NO_COLOR"), "Disable colored output when set to any value"})
	w.Table([]string{"Variable", "Description"}, envRows)

	w.Paragraph("Command-line flags take precedence over environment variables.")

	w.Header(2, "Exit Codes")
	writeExitCodes(w, allExitCodes)

	w.Header(2, "Getting Help")
	w.CodeBlock("bash", `# General help
lox help
lox --help

# Command-specific help
lox ast --help`)

	// Write file
	filename := filepath.Join(outDir, "index.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// exitCodeMeanings describes every status lox can exit with.
var exitCodeMeanings = map[int]string{
	lox.ExitOK:        "Success",
	1:                 "Unexpected error (check stderr for details)",
	lox.ExitUsage:     "Command line usage error",
	lox.ExitDataError: "The script has scan or parse errors",
	lox.ExitIOError:   "The script could not be read",
}

var allExitCodes = []int{lox.ExitOK, 1, lox.ExitUsage, lox.ExitDataError, lox.ExitIOError}

// commandExitCodes lists the statuses each command can produce.
var commandExitCodes = map[string][]int{
	"run":        {lox.ExitOK, lox.ExitUsage, lox.ExitDataError, lox.ExitIOError},
	"tokens":     {lox.ExitOK, lox.ExitUsage, lox.ExitDataError, lox.ExitIOError},
	"ast":        {lox.ExitOK, lox.ExitUsage, lox.ExitDataError, lox.ExitIOError},
	"check":      {lox.ExitOK, lox.ExitUsage, lox.ExitDataError, lox.ExitIOError},
	"repl":       {lox.ExitOK, 1, lox.ExitUsage},
	"lsp":        {lox.ExitOK, 1, lox.ExitUsage},
	"version":    {lox.ExitOK, lox.ExitUsage},
	"completion": {lox.ExitOK, lox.ExitUsage},
}

// generateCommandPage writes <name>.md: usage, options with the LOX_
// variable behind each flag, the exit codes the command can produce, and
// examples.
func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	w.Paragraph(cmp.Or(cmd.Long, cmd.Short))

	w.Header(2, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if codes, ok := commandExitCodes[cmd.Name()]; ok {
		w.Header(2, "Exit Codes")
		writeExitCodes(w, codes)
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	return os.WriteFile(filepath.Join(outDir, cmd.Name()+".md"), w.Bytes(), 0600)
}

// visibleCommands returns the documented subcommands of root.
func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func writeExitCodes(w *MarkdownWriter, codes []int) {
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []string{InlineCode(strconv.Itoa(code)), exitCodeMeanings[code]})
	}
	w.Table([]string{"Code", "Meaning"}, rows)
}

// flagEnvVars maps flag names to the LOX_ variable of the configuration key
// the flag overrides. Flags without a key, such as --config, are absent.
func flagEnvVars() map[string]string {
	vars := make(map[string]string)
	for _, f := range configFields() {
		vars[strings.ReplaceAll(f.Key, "_", "-")] = f.EnvVar()
	}
	return vars
}

// writeFlagsTable writes one row per visible flag.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	envVars := flagEnvVars()

	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		option := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			option = InlineCode("-"+f.Shorthand) + ", " + option
		}

		def := f.DefValue
		if def != "" && f.Value.Type() != "bool" {
			def = InlineCode(def)
		}

		env := ""
		if v, ok := envVars[f.Name]; ok {
			env = InlineCode(v)
		}

		rows = append(rows, []string{option, def, env, cleanDescription(f.Usage)})
	})

	w.Table([]string{"Option", "Default", "Environment", "Description"}, rows)
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	indent, found := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found || len(lead) < len(indent) {
			indent, found = lead, true
		}
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
