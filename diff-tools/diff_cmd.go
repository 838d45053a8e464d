package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/render"
	"github.com/npillmayer/fontdiff/report"
	"github.com/npillmayer/fontdiff/ttj"
	"github.com/thatisuday/commando"
)

func runDiffCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	a, fa := mustLoadFont(args["font1"].Value)
	b, fb := mustLoadFont(args["font2"].Value)
	opts, err := diffOptions(flags)
	if err != nil {
		fatalf("%v", err)
	}
	rep, err := fontdiff.Compare(a, b, opts)
	if err != nil {
		fatalf("comparison failed: %v", err)
	}
	switch {
	case mustFlagBool(flags["html"], "html"):
		hr := report.HTMLReporter{
			OutputDir: mustFlagString(flags["output"], "output"),
			OldName:   fa.FileName(),
			NewName:   fb.FileName(),
		}
		if hr.OutputDir == "" {
			hr.OutputDir = "out"
		}
		page, err := hr.Write(rep, a, b)
		if err != nil {
			fatalf("cannot write HTML report: %v", err)
		}
		fmt.Printf("wrote %s\n", page)
	case mustFlagBool(flags["json"], "json"):
		if err := report.WriteJSON(os.Stdout, rep, mustFlagBool(flags["pretty"], "pretty")); err != nil {
			fatalf("cannot write JSON report: %v", err)
		}
	default:
		tr := report.TextReporter{Succinct: !mustFlagBool(flags["no-succinct"], "no-succinct")}
		if err := tr.Write(os.Stdout, rep); err != nil {
			fatalf("cannot write report: %v", err)
		}
	}
}

// diffOptions translates the flags of command 'diff' to comparison options.
func diffOptions(flags map[string]commando.FlagValue) (fontdiff.Options, error) {
	opts := fontdiff.DefaultOptions()
	opts.Tables = !mustFlagBool(flags["no-tables"], "no-tables")
	opts.Kerns = !mustFlagBool(flags["no-kerns"], "no-kerns")
	opts.Glyphs = !mustFlagBool(flags["no-glyphs"], "no-glyphs")
	opts.Words = !mustFlagBool(flags["no-words"], "no-words")
	opts.MaxChanges = mustFlagInt(flags["max-changes"], "max-changes")
	opts.NoMatch = mustFlagBool(flags["no-match"], "no-match")
	if jobs := mustFlagInt(flags["jobs"], "jobs"); jobs > 0 {
		opts.Jobs = jobs
	}
	opts.Instances = splitList(mustFlagString(flags["instance"], "instance"), ",")
	opts.Locations = splitList(mustFlagString(flags["location"], "location"), ";")
	opts.Masters = mustFlagBool(flags["masters"], "masters")
	opts.CrossProduct = mustFlagBool(flags["cross-product"], "cross-product")
	opts.Splits = mustFlagInt(flags["cross-product-splits"], "cross-product-splits")
	if opts.Splits < 1 {
		return opts, fmt.Errorf("--cross-product-splits must be >= 1")
	}
	for _, path := range splitList(mustFlagString(flags["custom-wordlists"], "custom-wordlists"), ",") {
		wl, err := render.LoadWordlist(path)
		if err != nil {
			return opts, fmt.Errorf("cannot load word list %s: %w", path, err)
		}
		opts.CustomWordlists = append(opts.CustomWordlists, wl)
	}
	return opts, nil
}

func runKernsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	a, _ := mustLoadFont(args["font1"].Value)
	b, _ := mustLoadFont(args["font2"].Value)
	maxChanges := mustFlagInt(flags["max-changes"], "max-changes")
	delta := ttj.KernDiff(a.Font, b.Font, maxChanges, mustFlagBool(flags["no-match"], "no-match"))
	if !ttj.IsSomething(delta) {
		fmt.Println("No differences found")
		return
	}
	rep := &report.Report{Kerns: &delta}
	if mustFlagBool(flags["json"], "json") {
		if err := report.WriteJSON(os.Stdout, rep, mustFlagBool(flags["pretty"], "pretty")); err != nil {
			fatalf("cannot write JSON report: %v", err)
		}
		return
	}
	if err := (report.TextReporter{}).Write(os.Stdout, rep); err != nil {
		fatalf("cannot write report: %v", err)
	}
}
