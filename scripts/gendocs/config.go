package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/leapstack-labs/lox/internal/cli/config"
)

// ConfigField describes one configuration key.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Allowed     []string
	Description string
}

// EnvVar returns the environment variable that sets the key.
func (f ConfigField) EnvVar() string {
	return "LOX_" + strings.ToUpper(f.Key)
}

var configDescriptions = map[string]string{
	"output":         "Output format for command results",
	"no_color":       "Disable colored output",
	"verbose":        "Enable debug logging",
	"log_level":      "Minimum level of log messages written to stderr",
	"log_file":       "File that also receives every log message as JSON",
	"history_file":   "File where the interactive prompt keeps its history (default `~/.lox_history`)",
	"prompt":         "Prompt shown by the interactive prompt",
	"ast_format":     "Default format of the ast command",
	"watch_debounce": "Delay before re-checking after a file change in check --watch",
}

var configAllowed = map[string][]string{
	"output":     config.OutputModes,
	"log_level":  config.LogLevels,
	"ast_format": config.ASTFormats,
}

// configFields lists the keys of config.Config in declaration order with
// their defaults.
func configFields() []ConfigField {
	def := reflect.ValueOf(config.Default()).Elem()
	typ := def.Type()

	fields := make([]ConfigField, 0, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		key := sf.Tag.Get("koanf")
		if key == "" {
			continue
		}
		fields = append(fields, ConfigField{
			Key:         key,
			Type:        sf.Type.String(),
			Default:     fmt.Sprint(def.Field(i).Interface()),
			Allowed:     configAllowed[key],
			Description: configDescriptions[key],
		})
	}
	return fields
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "lox configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("lox reads `lox.yaml` (or `lox.yml`) from the working directory or the nearest parent directory. " +
		"Values are overridden by `LOX_` environment variables, which are overridden by command-line flags.")

	var rows [][]string
	for _, f := range configFields() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		} else {
			defVal = InlineCode(defVal)
		}
		desc := f.Description
		if len(f.Allowed) > 0 {
			desc += " (" + strings.Join(f.Allowed, ", ") + ")"
		}
		rows = append(rows, []string{InlineCode(f.Key), f.Type, defVal, desc})
	}
	w.Table([]string{"Key", "Type", "Default", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: text
log_level: info
prompt: "lox> "
ast_format: tree
watch_debounce: 250ms`)

	filename := filepath.Join(outDir, "configuration.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated configuration.md")
	return nil
}
