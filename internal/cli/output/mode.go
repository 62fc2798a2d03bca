// Package output renders CLI results for terminals, pipes and machines.
//
// A Renderer is created once per command invocation from the configured
// output mode. In auto mode it prints styled text when stdout is a terminal
// and markdown otherwise, so piped output stays readable in documents and
// agent transcripts.
package output

import "strings"

// Mode selects how results are rendered.
type Mode string

// OutputMode is an alias kept for call sites that read better with it.
type OutputMode = Mode

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
	ModeMarkdown Mode = "markdown"
)

// ParseMode converts a configuration string to a Mode. Unknown or empty
// values fall back to ModeAuto.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModeJSON, ModeYAML, ModeMarkdown:
		return m
	default:
		return ModeAuto
	}
}

// IsStructured reports whether the mode produces a machine-readable document.
func (m Mode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
