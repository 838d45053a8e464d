/*
Package report holds the result of comparing two fonts and writes it as
text, JSON or HTML.

A Report collects the delta of the serialized font tables, the delta of the
kerning, the difference in encoded characters and, for every location in
design space tested, the glyphs and words rendered differently. Reporters
interpret the delta documents produced by package ttj: leaf changes are
pairs [old, new], and subtrees with too many changes are replaced by a map
holding a single "error" entry.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff.report'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff.report")
}
