/*
Package fontdiff compares two versions of an OpenType font.

There are several ways two versions of a font may differ, and Compare looks
at all of them:

▪︎ The binary tables: both fonts are serialized into generic documents,
which are then compared structurally (see package ttj).

▪︎ Kerning: the pair positioning of both fonts is flattened into a map of
glyph pairs and compared.

▪︎ The encoded characters: characters added or removed.

▪︎ Rendering: every character encoded in both fonts, and words of every
script supported by both fonts, are shaped and rendered with both fonts,
and the images are compared pixel by pixel (see package render).

For variable fonts the rendering tests are repeated at a number of locations
in design space: named instances, explicit locations, the masters of the
font or a cross product of axis values.

	a, _ := dfont.New(oldBytes)
	b, _ := dfont.New(newBytes)
	rep, err := fontdiff.Compare(a, b, fontdiff.DefaultOptions())

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontdiff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}
