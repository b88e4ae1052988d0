package treediff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pulumi/inflector"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/asttools/treediff/internal/util/textcap"
	"github.com/asttools/treediff/tree"
)

// TextOptions configures RenderText.
type TextOptions struct {
	// Positions enriches findings with source spans and excerpts.
	Positions *PositionContext
	// MaxFindings caps the rendered findings; <= 0 means unlimited. The
	// header always reports the true total.
	MaxFindings int
	// Color enables ANSI colors on the finding tags.
	Color bool
}

const (
	changedTag      = color.FgYellow
	onlyExpectedTag = color.FgRed
	onlyActualTag   = color.FgGreen
)

// RenderText writes the human-readable difference report. Output is
// deterministic for identical inputs (with Color off), which makes it
// suitable for snapshot assertions.
func RenderText(out io.Writer, d *Difference, opts TextOptions) {
	n := d.Len()
	switch n {
	case 0:
		fmt.Fprintln(out, "No differences found.")
		return
	case 1:
		fmt.Fprintln(out, "Found 1 difference:")
	default:
		fmt.Fprintf(out, "Found %d %s:\n", n, inflector.Pluralize("difference"))
	}

	max := opts.MaxFindings
	if max <= 0 {
		max = -1
	}
	w := textcap.New(out, max)

	for _, f := range d.DifferingPairs() {
		fmt.Fprintf(w, "- %s %s: %s\n", paint(opts.Color, changedTag, "[changed]"), f.Kind, f.Message)
		writeSide(w, opts, "expected", f.ExpectedPath)
		writeSide(w, opts, "actual", f.ActualPath)
		writeDelta(w, opts, f.ExpectedPath, f.ActualPath)
		w.Incr()
	}
	for _, f := range d.ExtraExpected() {
		fmt.Fprintf(w, "- %s %s: %s\n", paint(opts.Color, onlyExpectedTag, "[only in expected]"), f.Kind, f.Message)
		writeSide(w, opts, "expected", f.Path)
		w.Incr()
	}
	for _, f := range d.ExtraActual() {
		fmt.Fprintf(w, "- %s %s: %s\n", paint(opts.Color, onlyActualTag, "[only in actual]"), f.Kind, f.Message)
		writeSide(w, opts, "actual", f.Path)
		w.Incr()
	}

	if skipped := w.Skipped(); skipped > 0 {
		fmt.Fprintf(out, "... and %d more\n", skipped)
	}
}

// Report renders the difference as a string, optionally enriched with
// source positions. A nil context is valid and omits position detail.
func (d *Difference) Report(ctx *PositionContext) string {
	var b strings.Builder
	RenderText(&b, d, TextOptions{Positions: ctx})
	return b.String()
}

func writeSide(w io.Writer, opts TextOptions, side string, p tree.Path) {
	fmt.Fprintf(w, "    %s at %s", side, p)
	if ex, ok := opts.Positions.Lookup(p); ok {
		fmt.Fprintf(w, " (%s) `%s`", ex.Span, ex.Text)
	}
	fmt.Fprintln(w)
}

// writeDelta shows a compact inline text diff of the two source excerpts
// when both are known.
func writeDelta(w io.Writer, opts TextOptions, ep, ap tree.Path) {
	ee, eok := opts.Positions.Lookup(ep)
	ae, aok := opts.Positions.Lookup(ap)
	if !eok || !aok || ee.Text == ae.Text {
		return
	}
	fmt.Fprintf(w, "    delta: %s\n", inlineDiff(ee.Text, ae.Text))
}

func inlineDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("[+" + d.Text + "+]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// paint colors s on a per-call color instance, leaving the library's global
// enablement state alone.
func paint(enabled bool, attr color.Attribute, s string) string {
	if !enabled {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
