package ot

import "fmt"

// Glyph classes of GDEF's glyph class definition.
const (
	BaseGlyph      = 1
	LigatureGlyph  = 2
	MarkGlyph      = 3
	ComponentGlyph = 4
)

// GDef is the glyph definition table.
type GDef struct {
	Version            uint32 // major << 16 | minor
	GlyphClassDef      *ClassDef
	AttachList         *AttachList
	LigCaretList       *LigCaretList
	MarkAttachClassDef *ClassDef
	MarkGlyphSets      []Coverage
	VarStore           *ItemVariationStore
}

// AttachList lists contour attachment points of glyphs, by coverage index.
type AttachList struct {
	Coverage Coverage
	Points   [][]uint16
}

// LigCaretList lists caret positions of ligature glyphs, by coverage index.
type LigCaretList struct {
	Coverage Coverage
	Carets   [][]CaretValue
}

// CaretValue is a ligature caret position. Format 1 gives a coordinate,
// format 2 a contour point, format 3 a coordinate with a device or
// variation index table.
type CaretValue struct {
	Format     uint16
	Coordinate int16
	PointIndex uint16
	Device     *Device
}

// GDef decodes table 'GDEF'.
func (otf *Font) GDef() (*GDef, error) {
	tag := T("GDEF")
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	gdef, err := parseGDef(b)
	return gdef, otf.ec.tableError(tag, "Header", err)
}

func parseGDef(b binarySegm) (*GDef, error) {
	if err := b.need(12, "GDEF header"); err != nil {
		return nil, err
	}
	gdef := &GDef{Version: b.U32(0)}
	if major := b.U16(0); major != 1 {
		return nil, errFontFormat(fmt.Sprintf("unsupported GDEF version %d", major))
	}
	minor := b.U16(2)
	var err error
	if gdef.GlyphClassDef, err = classDefAt(b, 4); err != nil {
		return nil, fmt.Errorf("glyph class definition: %w", err)
	}
	if link, err := b.offset16(6); err != nil {
		return nil, err
	} else if link != nil {
		if gdef.AttachList, err = parseAttachList(link); err != nil {
			return nil, fmt.Errorf("attach list: %w", err)
		}
	}
	if link, err := b.offset16(8); err != nil {
		return nil, err
	} else if link != nil {
		if gdef.LigCaretList, err = parseLigCaretList(link); err != nil {
			return nil, fmt.Errorf("ligature caret list: %w", err)
		}
	}
	if gdef.MarkAttachClassDef, err = classDefAt(b, 10); err != nil {
		return nil, fmt.Errorf("mark attachment class definition: %w", err)
	}
	if minor >= 2 {
		if link, err := b.offset16(12); err != nil {
			return nil, err
		} else if link != nil {
			if gdef.MarkGlyphSets, err = parseMarkGlyphSets(link); err != nil {
				return nil, fmt.Errorf("mark glyph sets: %w", err)
			}
		}
	}
	if minor >= 3 {
		link, err := b.offset32(14)
		if err != nil {
			return nil, err
		}
		if gdef.VarStore, err = parseItemVariationStore(link); err != nil {
			return nil, fmt.Errorf("item variation store: %w", err)
		}
	}
	return gdef, nil
}

func parseAttachList(b binarySegm) (*AttachList, error) {
	if err := b.need(4, "attach list"); err != nil {
		return nil, err
	}
	al := &AttachList{}
	var err error
	if al.Coverage, err = coverageAt(b, 0); err != nil {
		return nil, err
	}
	offsets, err := b.uint16s(4, int(b.U16(2)))
	if err != nil {
		return nil, errFontFormat("attach point offsets truncated")
	}
	for _, off := range offsets {
		ap, err := b.offsetFrom(uint32(off))
		if err != nil || ap == nil {
			return nil, errFontFormat("attach point offset")
		}
		points, err := ap.uint16s(2, int(ap.U16(0)))
		if err != nil {
			return nil, errFontFormat("attach points truncated")
		}
		al.Points = append(al.Points, points)
	}
	return al, nil
}

func parseLigCaretList(b binarySegm) (*LigCaretList, error) {
	if err := b.need(4, "ligature caret list"); err != nil {
		return nil, err
	}
	lcl := &LigCaretList{}
	var err error
	if lcl.Coverage, err = coverageAt(b, 0); err != nil {
		return nil, err
	}
	offsets, err := b.uint16s(4, int(b.U16(2)))
	if err != nil {
		return nil, errFontFormat("ligature glyph offsets truncated")
	}
	for _, off := range offsets {
		lg, err := b.offsetFrom(uint32(off))
		if err != nil || lg == nil {
			return nil, errFontFormat("ligature glyph offset")
		}
		caretOffsets, err := lg.uint16s(2, int(lg.U16(0)))
		if err != nil {
			return nil, errFontFormat("caret value offsets truncated")
		}
		carets := make([]CaretValue, 0, len(caretOffsets))
		for _, co := range caretOffsets {
			cb, err := lg.offsetFrom(uint32(co))
			if err != nil || cb == nil {
				return nil, errFontFormat("caret value offset")
			}
			cv, err := parseCaretValue(cb)
			if err != nil {
				return nil, err
			}
			carets = append(carets, cv)
		}
		lcl.Carets = append(lcl.Carets, carets)
	}
	return lcl, nil
}

func parseCaretValue(b binarySegm) (CaretValue, error) {
	if err := b.need(4, "caret value"); err != nil {
		return CaretValue{}, err
	}
	cv := CaretValue{Format: b.U16(0)}
	switch cv.Format {
	case 1:
		cv.Coordinate = b.I16(2)
	case 2:
		cv.PointIndex = b.U16(2)
	case 3:
		if err := b.need(6, "caret value format 3"); err != nil {
			return cv, err
		}
		cv.Coordinate = b.I16(2)
		var err error
		if cv.Device, err = deviceAt(b, b.U16(4)); err != nil {
			return cv, err
		}
	default:
		return cv, errFontFormat(fmt.Sprintf("unknown caret value format %d", cv.Format))
	}
	return cv, nil
}

func parseMarkGlyphSets(b binarySegm) ([]Coverage, error) {
	if err := b.need(4, "mark glyph sets"); err != nil {
		return nil, err
	}
	count := int(b.U16(2))
	if err := b.need(4+4*count, "mark glyph set offsets"); err != nil {
		return nil, err
	}
	sets := make([]Coverage, count)
	for i := range count {
		link, err := b.offset32(4 + 4*i)
		if err != nil {
			return nil, err
		}
		if sets[i], err = parseCoverage(link); err != nil {
			return nil, err
		}
	}
	return sets, nil
}
