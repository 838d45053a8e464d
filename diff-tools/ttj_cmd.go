package main

import (
	"fmt"

	"github.com/npillmayer/fontdiff/ttj"
	"github.com/thatisuday/commando"
)

func runTTJCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	df, _ := mustLoadFont(args["font"].Value)
	doc := ttj.FontToJSON(df.Font, nil)
	if mustFlagBool(flags["kerns"], "kerns") {
		doc = ttj.JustKerns(doc)
	} else if tags := splitList(mustFlagString(flags["table"], "table"), ","); len(tags) > 0 {
		doc = selectTables(doc, tags)
	}
	if mustFlagBool(flags["pretty"], "pretty") {
		fmt.Println(doc.Indent())
		return
	}
	fmt.Println(doc.String())
}

// selectTables returns a document holding the tables with the given tags.
// Tags of tables missing from the font are reported and skipped.
func selectTables(font ttj.Document, tags []string) ttj.Document {
	doc := ttj.NewMap()
	for _, tag := range tags {
		table, ok := font.Get(tag)
		if !ok {
			tracer().Errorf("font has no table %s", tag)
			continue
		}
		doc.Set(tag, table)
	}
	return doc
}
