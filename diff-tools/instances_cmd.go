package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/thatisuday/commando"
)

func runInstancesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	a, fa := mustLoadFont(args["font1"].Value)
	fmt.Printf("Font: %s (%s %s)\n", fa.Fontname, a.FamilyName(), a.StyleName())
	printVariations(a)
	b := a
	if name := strings.TrimSpace(args["font2"].Value); name != "" {
		b, _ = mustLoadFont(name)
		fmt.Printf("\nFont: %s (%s %s)\n", name, b.FamilyName(), b.StyleName())
		printVariations(b)
		axes, instances := dfont.SharedAxes(a, b)
		fmt.Println("\nShared axes:")
		printAxes(axes)
		fmt.Printf("Shared instances: %s\n", strings.Join(instances, ", "))
	}
	opts := fontdiff.DefaultOptions()
	opts.Masters = mustFlagBool(flags["masters"], "masters")
	opts.CrossProduct = mustFlagBool(flags["cross-product"], "cross-product")
	opts.Splits = mustFlagInt(flags["cross-product-splits"], "cross-product-splits")
	settings, err := fontdiff.GenerateSettings(a, b, opts)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("\nLocations tested (%d):\n", len(settings))
	for _, s := range settings {
		fmt.Printf(" - %s\n", s)
	}
}

func printVariations(df *dfont.DFont) {
	if !df.IsVariable() {
		fmt.Println("Static font")
		return
	}
	fmt.Println("Axes:")
	printAxes(df.AxisInfo())
	fmt.Printf("Instances: %s\n", strings.Join(df.Instances(), ", "))
	masters, err := df.Masters()
	if err != nil {
		tracer().Infof("no masters: %v", err)
		return
	}
	fmt.Printf("Masters (%d):\n", len(masters))
	for _, m := range masters {
		fmt.Printf(" - %s\n", dfont.LocationName(m))
	}
}

func printAxes(axes map[string]dfont.AxisRange) {
	tags := make([]string, 0, len(axes))
	for tag := range axes {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	for _, tag := range tags {
		r := axes[tag]
		fmt.Printf(" - %s: %g .. %g .. %g\n", tag, r.Min, r.Default, r.Max)
	}
}
