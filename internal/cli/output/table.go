package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatHeader returns a markdown header of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a markdown list item "- **key:** value".
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}

// Table renders rows under header. On a terminal the table is drawn with
// rounded borders, in markdown mode as a markdown table, and otherwise with
// light borders.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch {
	case r.EffectiveMode() == ModeMarkdown:
		t.RenderMarkdown()
	case r.isTTY:
		t.SetStyle(table.StyleRounded)
		t.Render()
	default:
		t.SetStyle(table.StyleLight)
		t.Render()
	}
}
