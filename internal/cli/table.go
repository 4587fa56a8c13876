package cli

import (
	"io"

	"labelctl/internal/label"
	"labelctl/internal/template"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderLabelTable writes all labels as a table to out.
func RenderLabelTable(out io.Writer, labels []label.Label) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"NAME", "COLOR", "DESCRIPTION"})
	for _, l := range labels {
		t.AppendRow(table.Row{
			text.FgCyan.Sprint(l.Name),
			"#" + l.Color,
			l.Description,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderTemplateTable writes the available templates as a table to out.
// Built-ins carry a "(built-in)" source; user templates show their file.
func RenderTemplateTable(out io.Writer, infos []template.Info) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"NAME", "DESCRIPTION", "SOURCE"})
	for _, info := range infos {
		source := info.Path
		if info.Builtin() {
			source = text.FgHiBlack.Sprint("(built-in)")
		}
		t.AppendRow(table.Row{
			text.FgCyan.Sprint(info.Name),
			info.Description,
			source,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
