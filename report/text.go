package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/fontdiff/ttj"
	"github.com/pterm/pterm"
)

// TextReporter writes a report for the terminal. Values of the old font are
// shown in green, values of the new font in red.
//
// With Succinct set, a change from something to nothing (e.g. from a number
// to zero or to an absent value) is shown as "<absent>", and tables present
// in only one font are not dumped.
type TextReporter struct {
	Succinct bool
	NoColor  bool
}

// Write writes a report as text.
func (tr TextReporter) Write(w io.Writer, r *Report) error {
	p := &printer{w: w, color: !tr.NoColor}
	if r.Tables != nil {
		tr.writeTables(p, *r.Tables)
	}
	if r.Kerns != nil && ttj.IsSomething(*r.Kerns) {
		p.println("\n# Kerning")
		tr.writeDelta(p, *r.Kerns)
	}
	if r.CmapDiff != nil && r.CmapDiff.IsSomething() {
		p.println("\n# Encoded Glyphs")
		if len(r.CmapDiff.Missing) > 0 {
			p.println("\nMissing glyphs:")
			for _, g := range r.CmapDiff.Missing {
				p.printf(" - %s\n", g)
			}
		}
		if len(r.CmapDiff.New) > 0 {
			p.println("\nNew glyphs:")
			for _, g := range r.CmapDiff.New {
				p.printf(" - %s\n", g)
			}
		}
	}
	for _, lr := range r.Locations {
		if lr.IsSomething() {
			tr.writeLocation(p, lr)
		}
	}
	return p.err
}

func (tr TextReporter) writeTables(p *printer, tables ttj.Document) {
	if msg, ok := ttj.IsErrorDocument(tables); ok {
		p.println(p.paint(pterm.FgRed, msg))
		return
	}
	for name, diff := range tables.Entries() {
		if ttj.IsSomething(diff) {
			p.printf("\n# %s\n", name)
		}
		tr.writeDelta(p, diff)
	}
}

// writeDelta writes the delta of a single table.
func (tr TextReporter) writeDelta(p *printer, diff ttj.Document) {
	if left, right, ok := ttj.IsPair(diff); ok {
		switch {
		case tr.Succinct && ttj.IsSomething(left) && !ttj.IsSomething(right):
			p.println("Table was present in LHS but absent in RHS")
		case tr.Succinct && ttj.IsSomething(right) && !ttj.IsSomething(left):
			p.println("Table was present in RHS but absent in LHS")
		default:
			p.printf("LHS had: %s\n", left)
			p.printf("RHS had: %s\n", right)
		}
		return
	}
	if diff.Kind() == ttj.KindMap {
		tr.writeMapDiff(p, diff, 0)
		return
	}
	if !diff.IsNull() {
		p.printf("Unexpected diff format: %s\n", diff)
	}
}

func (tr TextReporter) writeMapDiff(p *printer, fields ttj.Document, indent int) {
	for field, diff := range fields.Entries() {
		p.printf("%s", strings.Repeat("  ", indent))
		if field == "error" {
			msg, _ := diff.AsString()
			p.println(p.paint(pterm.FgRed, msg))
			continue
		}
		if left, right, ok := ttj.IsPair(diff); ok {
			l := p.paint(pterm.FgGreen, left.String())
			r := p.paint(pterm.FgRed, right.String())
			if tr.Succinct && ttj.IsSomething(left) && !ttj.IsSomething(right) {
				r = p.style(pterm.NewStyle(pterm.FgRed, pterm.Italic), "<absent>")
			} else if tr.Succinct && ttj.IsSomething(right) && !ttj.IsSomething(left) {
				l = p.style(pterm.NewStyle(pterm.FgGreen, pterm.Italic), "<absent>")
			}
			p.printf("%s: %s => %s\n", field, l, r)
		} else if diff.Kind() == ttj.KindMap {
			p.printf("%s:\n", field)
			tr.writeMapDiff(p, diff, indent+1)
		} else {
			p.printf("%s: %s\n", field, diff)
		}
	}
}

func (tr TextReporter) writeLocation(p *printer, lr LocationResult) {
	p.printf("\n# Differences at location %s", lr.Location)
	if len(lr.Coords) > 0 {
		coords := make([]string, 0, len(lr.Coords))
		for _, tag := range lr.AxisTags() {
			coords = append(coords, fmt.Sprintf("%s: %g", tag, lr.Coords[tag]))
		}
		p.printf(" (%s)", strings.Join(coords, ", "))
	}
	p.println()
	if lr.Error != "" {
		p.println(p.paint(pterm.FgRed, lr.Error))
	}
	if len(lr.Glyphs) > 0 {
		p.println("\n## Glyphs")
		for _, g := range lr.Glyphs {
			p.printf(" - %s %s %s (%d pixels)\n", g.Char, g.Unicode, g.Name, g.DifferingPixels)
		}
	}
	if len(lr.Words) > 0 {
		p.println("\n## Words")
		for _, name := range lr.Wordlists() {
			p.printf("\n### %s\n", name)
			for _, d := range lr.Words[name] {
				p.printf("  - %s (%d pixels)\n", d.Word, d.DifferingPixels)
			}
		}
	}
}

// printer writes to an io.Writer and remembers the first error.
type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, args...)
	}
}

func (p *printer) paint(c pterm.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func (p *printer) style(st *pterm.Style, s string) string {
	if !p.color {
		return s
	}
	return st.Sprint(s)
}
