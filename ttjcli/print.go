package main

import (
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/fontdiff/report"
	"github.com/npillmayer/fontdiff/ttj"
	"github.com/pterm/pterm"
)

// printOp prints the entry at the current path of font A, or of font B with
// argument 'b'. Format 'compact' prints it on a single line.
func printOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	slot := 0
	if strings.ToLower(op.arg) == "b" {
		if intp.fonts[1] == nil {
			return ERR_NO_SECOND_FONT, false
		}
		slot = 1
	}
	d, ok := intp.node(slot)
	if !ok {
		pterm.Printf("<absent in %s>\n", intp.fonts[slot].name)
		return
	}
	if op.format == "compact" || op.arg == "compact" {
		pterm.Println(d.String())
	} else {
		pterm.Println(d.Indent())
	}
	return
}

// diffOp compares the entries at the current path of font A and font B.
func diffOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	if intp.fonts[1] == nil {
		return ERR_NO_SECOND_FONT, false
	}
	left, _ := intp.node(0)
	right, _ := intp.node(1)
	delta := ttj.Diff(left, right, intp.maxChanges)
	if !ttj.IsSomething(delta) {
		pterm.Info.Println("No differences found")
		return
	}
	if len(intp.path) > 0 {
		wrapped := ttj.NewMap()
		wrapped.Set(strings.Join(intp.path, "/"), delta)
		delta = wrapped
	}
	err = report.TextReporter{Succinct: op.arg != "full"}.Write(os.Stdout, &report.Report{Tables: &delta})
	return
}

// kernsOp compares the kerning of both fonts or, with a single font loaded,
// lists its kerning pairs. An argument restricts the list to pairs starting
// with a glyph.
func kernsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	kernsA := ttj.JustKerns(intp.fonts[0].doc)
	if intp.fonts[1] != nil {
		kernsB := ttj.JustKerns(intp.fonts[1].doc)
		delta := ttj.Diff(kernsA, kernsB, intp.maxChanges)
		if !ttj.IsSomething(delta) {
			pterm.Info.Println("No differences found")
			return
		}
		err = report.TextReporter{Succinct: true}.Write(os.Stdout, &report.Report{Kerns: &delta})
		return
	}
	pairs := kernPairs(kernsA, op.arg)
	pterm.Printf("%d kerning pairs\n", len(pairs))
	for _, pair := range pairs {
		v, _ := kernsA.Get(pair)
		pterm.Printf("  %s: %s\n", pair, v)
	}
	return
}

// kernPairs returns the sorted keys of flattened kerning pairs, restricted
// to those with left glyph first if first is not empty.
func kernPairs(kerns ttj.Document, first string) []string {
	var pairs []string
	for _, pair := range kerns.Keys() {
		if first == "" || strings.HasPrefix(pair, first+"/") {
			pairs = append(pairs, pair)
		}
	}
	sort.Strings(pairs)
	return pairs
}
