package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/fontdiff/ot"
	"github.com/npillmayer/fontdiff/otquery"
	"github.com/thatisuday/commando"
)

func runInfoCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	df, sf := mustLoadFont(args["font"].Value)
	otf := df.Font

	if sf.Filepath != "" {
		fmt.Printf("Path: %s\n", sf.Filepath)
	}
	fmt.Printf("Type: %s\n", otquery.FontType(otf))
	if otquery.IsVariable(otf) {
		fmt.Println("Variable: yes")
		printAxes(df.AxisInfo())
	}
	names := otquery.NameInfo(otf)
	for _, key := range []string{"family", "subfamily", "version"} {
		if value := names[key]; value != "" {
			fmt.Printf("%s: %s\n", strings.ToUpper(key[:1])+key[1:], value)
		}
	}
	if head, ok := otquery.HeadInfo(otf); ok {
		fmt.Printf("Units per em: %d, revision %.3f\n", head.UnitsPerEm, head.FontRevision)
	}
	if maxp, ok := otquery.MaxPInfo(otf); ok {
		fmt.Printf("Glyphs: %d\n", maxp.NumGlyphs)
	}
	fm := otquery.FontMetrics(otf)
	fmt.Printf("Ascent: %d, descent: %d, line gap: %d\n", fm.Ascent, fm.Descent, fm.LineGap)

	tags := otf.TableTags()
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	fmt.Printf("Tables (%d):", len(tags))
	for _, tag := range tags {
		fmt.Printf(" %s", tag.String())
	}
	fmt.Println()
	fmt.Printf("Layout: %s\n", strings.Join(otquery.LayoutTables(otf), ","))
	fmt.Printf("Scripts: %s\n", strings.Join(df.SupportedScripts(), ", "))
	if script := mustFlagString(flags["script"], "script"); script != "" {
		scr, err := parseScript(script)
		if err != nil {
			fatalf("%v", err)
		}
		tag := ot.T(strings.ToLower(scr.String()))
		if found, _ := otquery.FontSupportsScript(otf, tag, ot.DFLT); found == tag {
			fmt.Printf("GSUB has script %s\n", tag)
		} else {
			fmt.Printf("GSUB has no script %s\n", tag)
		}
	}

	if chars := args["chars"].Value; chars != "" {
		fmt.Println("Glyph metrics:")
		for _, r := range chars {
			if r == ',' {
				continue
			}
			printGlyphMetrics(otf, r)
		}
	}

	errs := otf.Errors()
	warns := otf.Warnings()
	crit := otf.CriticalErrors()
	fmt.Printf("Issues: errors=%d warnings=%d critical=%d\n", len(errs), len(warns), len(crit))
	if mustFlagBool(flags["errors"], "errors") {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
		for _, w := range warns {
			fmt.Printf("warning: %s\n", w.String())
		}
	}
}

func printGlyphMetrics(otf *ot.Font, r rune) {
	gid := otquery.GlyphIndex(otf, r)
	if gid == 0 {
		fmt.Printf(" - %c (U+%04X): not encoded\n", r, r)
		return
	}
	m := otquery.GlyphMetrics(otf, gid)
	fmt.Printf(" - %c (U+%04X): glyph %d, advance %d, lsb %d, rsb %d, bbox %d,%d..%d,%d",
		r, r, gid, m.Advance, m.LSB, m.RSB, m.BBox.MinX, m.BBox.MinY, m.BBox.MaxX, m.BBox.MaxY)
	if cp := otquery.CodePointForGlyph(otf, gid); cp != r {
		fmt.Printf(", shared with U+%04X", cp)
	}
	fmt.Println()
}
