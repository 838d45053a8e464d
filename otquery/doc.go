/*
Package otquery answers questions about a font which need more than a single
table, e.g. the family name of a font or the scripts a font supports.

Package ot hands out tables, package otquery combines them into information
clients are usually interested in. Queries never fail hard: if a font lacks
the tables necessary to answer a query, a documented fallback value is
returned.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.opentype'
func tracer() tracing.Trace {
	return tracing.Select("font.opentype")
}
