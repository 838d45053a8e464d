package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "path", "paths", "cd", "up", "ls":
		pterm.Info.Println("Paths")
		pterm.Println(`
	A font is serialized into a tree of maps and arrays, with one entry per table
	at the top level. The current path addresses a node in this tree, for font A
	and font B alike.

	    cd:GPOS/lookup_list/0    descend, array items are addressed by index
	    cd:/head                 descend starting at the top level
	    cd:..  or  up  or  up:2  go up one or more levels
	    cd  or  cd:/             go to the top level
	    ls  or  ls:b             list the entries of the current node of font A (or B)
	`)
	case "diff", "kerns":
		pterm.Info.Println("Diff / Kerns")
		pterm.Println(`
	diff compares the current node of font A with that of font B:
	+-----------------+----------------------------------------+
	| [ left, right ] | a value which differs                  |
	| { ... }         | a map of differing entries             |
	| error           | too many changes to report on a level  |
	+-----------------+----------------------------------------+
	Values which are absent (or zero) in one font are shown as <absent>,
	use diff:full to show them anyway.

	kerns compares the flattened kerning pairs of both fonts. With a single font,
	it lists the kerning pairs, kerns:A restricts them to pairs starting with A.
	`)
	case "load", "tables", "print":
		pterm.Info.Println("Fonts")
		pterm.Println(`
	    load:<font>      load a font file or system font as font A
	    load:<font>:b    load a font as font B
	    tables           list the tables of both fonts
	    print            print the current node of font A
	    print:b          print the current node of font B
	    print:compact    print on a single line
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load tables cd up ls print diff kerns help quit

	Commands take arguments separated by colons, e.g. cd:GSUB/lookup_list.
	Several commands may be given on one line, separated by blanks.
	Use help:paths, help:diff or help:load for details.
	`)
	}
}
