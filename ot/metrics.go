package ot

import "fmt"

// Metrics holds the decoded entries of table 'hmtx' or 'vmtx'.
//
// The first NumberOfLongMetrics glyphs have an individual advance; every
// subsequent glyph repeats the last advance and stores its side bearing in
// the trailing array.
type Metrics struct {
	NumberOfLongMetrics int
	Advances            []uint16 // one per long metric
	SideBearings        []int16  // one per glyph
}

// Advance returns the advance of glyph g.
func (m *Metrics) Advance(g GlyphIndex) uint16 {
	if m == nil || len(m.Advances) == 0 {
		return 0
	}
	if int(g) < len(m.Advances) {
		return m.Advances[g]
	}
	return m.Advances[len(m.Advances)-1]
}

// SideBearing returns the left (or top) side bearing of glyph g.
func (m *Metrics) SideBearing(g GlyphIndex) int16 {
	if m == nil || int(g) >= len(m.SideBearings) {
		return 0
	}
	return m.SideBearings[g]
}

// HMetrics decodes table 'hmtx', using 'hhea' and 'maxp' for its dimensions.
func (otf *Font) HMetrics() (*Metrics, error) {
	return otf.metrics(T("hhea"), T("hmtx"))
}

// VMetrics decodes table 'vmtx', using 'vhea' and 'maxp' for its dimensions.
func (otf *Font) VMetrics() (*Metrics, error) {
	return otf.metrics(T("vhea"), T("vmtx"))
}

func (otf *Font) metrics(headerTag, tag Tag) (*Metrics, error) {
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	header, err := otf.tableData(headerTag)
	if err != nil {
		return nil, otf.ec.tableError(tag, "Header", fmt.Errorf("missing %s: %w", headerTag, err))
	}
	if err := header.need(36, headerTag.String()); err != nil {
		return nil, otf.ec.tableError(tag, "Header", err)
	}
	m, err := parseMetrics(b, int(header.U16(34)), otf.NumGlyphs())
	return m, otf.ec.tableError(tag, "Metrics", err)
}

func parseMetrics(b binarySegm, numLong, numGlyphs int) (*Metrics, error) {
	if numLong > numGlyphs {
		numLong = numGlyphs
	}
	if err := b.need(4*numLong, "long metrics"); err != nil {
		return nil, err
	}
	m := &Metrics{
		NumberOfLongMetrics: numLong,
		Advances:            make([]uint16, numLong),
		SideBearings:        make([]int16, numGlyphs),
	}
	for i := range numLong {
		m.Advances[i] = b.U16(4 * i)
		m.SideBearings[i] = b.I16(4*i + 2)
	}
	for i := numLong; i < numGlyphs; i++ {
		at := 4*numLong + 2*(i-numLong)
		if at+2 > len(b) {
			// Fonts in the wild sometimes omit trailing bearings.
			tracer().Debugf("metrics table ends before glyph %d", i)
			break
		}
		m.SideBearings[i] = b.I16(at)
	}
	return m, nil
}
