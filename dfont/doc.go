/*
Package dfont wraps a font binary together with a location in its design
space.

A DFont is what the rendering side of a font comparison works on: the raw
bytes, the parsed font, the set of encoded code-points and the variation
location currently selected. Locations are either given explicitly, as a
list of axis settings in user space, or by naming an instance of the font.
A Setting describes a location to apply to both fonts of a comparison.

	a, _ := dfont.New(oldBytes)
	b, _ := dfont.New(newBytes)
	setting := dfont.Instance("Bold")
	if err := setting.SetOnFonts(a, b); err != nil {
		...
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontdiff'
func tracer() tracing.Trace {
	return tracing.Select("fontdiff")
}
