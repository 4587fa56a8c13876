package cli

import (
	"fmt"
	"io"

	"labelctl/internal/label"
	"labelctl/internal/reconcile"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Printer renders labels, reconciliation outcomes and summaries for the
// terminal. It is the only place that knows how outcomes look; the
// engine just streams them through an observer.
type Printer struct {
	out    io.Writer
	dryRun bool
}

// NewPrinter returns a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// SetDryRun makes the printer tag every outcome line as simulated.
func (p *Printer) SetDryRun(dryRun bool) {
	p.dryRun = dryRun
}

// Observer adapts the printer to the engine's outcome callback.
func (p *Printer) Observer() func(reconcile.Outcome) {
	return p.Outcome
}

// Outcome renders a single reconciliation outcome line.
func (p *Printer) Outcome(o reconcile.Outcome) {
	var line string
	switch o.Action {
	case reconcile.ActionRenamed:
		line = fmt.Sprintf("  %s Renamed %s → %s",
			text.FgBlue.Sprint("↻"), p.name(o.Subject), p.name(o.Detail))
	case reconcile.ActionCreated:
		line = fmt.Sprintf("  %s Created %s", text.FgGreen.Sprint("✓"), p.name(o.Subject))
	case reconcile.ActionUpdated:
		line = fmt.Sprintf("  %s Updated %s", text.FgBlue.Sprint("✓"), p.name(o.Subject))
	case reconcile.ActionDeleted:
		line = fmt.Sprintf("  %s Deleted %s", text.FgRed.Sprint("✗"), p.name(o.Subject))
	case reconcile.ActionSkipped:
		line = fmt.Sprintf("  %s Skipped %s (%s)",
			text.FgYellow.Sprint("-"), p.name(o.Subject), o.Detail)
	case reconcile.ActionFailed:
		line = fmt.Sprintf("  %s %s %s: %s",
			text.FgRed.Sprint("✗"), text.FgRed.Sprint("Failed"), p.name(o.Subject), o.Detail)
	default:
		line = fmt.Sprintf("  ? %s %s", o.Action, p.name(o.Subject))
	}

	if p.dryRun && o.Action != reconcile.ActionFailed {
		line += " " + text.FgYellow.Sprint("[dry-run]")
	}
	fmt.Fprintln(p.out, line)
}

// Summary renders the final counts, plus the dry-run notice when no
// changes were persisted.
func (p *Printer) Summary(s reconcile.Summary) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, text.Bold.Sprint("=== Summary ==="))
	fmt.Fprintf(p.out, "  %s %d\n", text.FgGreen.Sprint("Success:"), s.Success)
	if s.Skipped > 0 {
		fmt.Fprintf(p.out, "  %s %d\n", text.FgYellow.Sprint("Skipped:"), s.Skipped)
	}
	if s.Failed > 0 {
		fmt.Fprintf(p.out, "  %s %d\n", text.FgRed.Sprint("Failed:"), s.Failed)
	}
	if p.dryRun {
		fmt.Fprintf(p.out, "\n%s\n", text.FgYellow.Sprint("This was a dry run. No actual changes were made."))
	}
}

// Label renders one label in the multi-line detail form used by get and
// create.
func (p *Printer) Label(l *label.Label) {
	fmt.Fprintf(p.out, "  Name:        %s\n", p.name(l.Name))
	fmt.Fprintf(p.out, "  Color:       %s #%s\n", text.Colors{text.Bold}.Sprint("■"), l.Color)
	if l.Description != "" {
		fmt.Fprintf(p.out, "  Description: %s\n", l.Description)
	}
	if l.URL != "" {
		fmt.Fprintf(p.out, "  URL:         %s\n", text.FgHiBlack.Sprint(l.URL))
	}
	fmt.Fprintln(p.out)
}

func (p *Printer) name(s string) string {
	return text.FgCyan.Sprintf("'%s'", s)
}
