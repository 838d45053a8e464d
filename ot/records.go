package ot

import (
	"fmt"
	"time"
)

// FieldType is the binary type of a field of a flat table record.
type FieldType int

// Field types as used by the OpenType specification.
const (
	FieldUint8 FieldType = iota
	FieldUint16
	FieldInt16
	FieldUint32
	FieldInt32
	FieldFixed        // 16.16 signed fixed point number
	FieldVersion      // 16.16 version number, major and minor as uint16
	FieldTag          // 4 byte tag
	FieldLongDateTime // seconds since 1904-01-01
	FieldPanose       // 10 bytes of PANOSE classification
	fieldReserved     // 16 bits, skipped
)

func (ft FieldType) size() int {
	switch ft {
	case FieldUint8:
		return 1
	case FieldUint16, FieldInt16, fieldReserved:
		return 2
	case FieldUint32, FieldInt32, FieldFixed, FieldVersion, FieldTag:
		return 4
	case FieldLongDateTime:
		return 8
	case FieldPanose:
		return 10
	}
	return 0
}

// Field describes a named field of a flat table record.
type Field struct {
	Name string
	Type FieldType
}

// FieldValue is a decoded field. Value is one of int64, float64, string or []int64.
type FieldValue struct {
	Name  string
	Type  FieldType
	Value any
}

// Record is a sequence of decoded fields, in table order.
type Record []FieldValue

// Get returns the value of a named field.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// recordLayout describes the fields of a flat table and the minimum size the
// table must have. Fields beyond the minimum size are decoded as far as the
// table extends, which covers versioned tables growing at their end.
type recordLayout struct {
	minSize int
	fields  []Field
	// size returns the byte size for a table version, if the layout depends on it
	size func(b binarySegm) int
}

// FlatRecord decodes one of the flat tables 'head', 'hhea', 'vhea', 'maxp',
// 'OS/2' or the header of 'post' into a sequence of named fields.
func (otf *Font) FlatRecord(tag Tag) (Record, error) {
	layout, ok := recordLayouts[tag.String()]
	if !ok {
		return nil, fmt.Errorf("table %s is not a flat record table", tag)
	}
	b, err := otf.tableData(tag)
	if err != nil {
		return nil, err
	}
	rec, err := decodeRecord(b, layout)
	return rec, otf.ec.tableError(tag, "Record", err)
}

func decodeRecord(b binarySegm, layout recordLayout) (Record, error) {
	if err := b.need(layout.minSize, "record"); err != nil {
		return nil, err
	}
	limit := len(b)
	if layout.size != nil {
		limit = min(limit, layout.size(b))
	}
	rec := make(Record, 0, len(layout.fields))
	pos := 0
	for _, f := range layout.fields {
		n := f.Type.size()
		if pos+n > limit {
			break
		}
		if f.Type != fieldReserved {
			rec = append(rec, FieldValue{Name: f.Name, Type: f.Type, Value: decodeField(b[pos:], f.Type)})
		}
		pos += n
	}
	return rec, nil
}

var epoch1904 = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

func decodeField(b binarySegm, ft FieldType) any {
	switch ft {
	case FieldUint8:
		return int64(b.U8(0))
	case FieldUint16:
		return int64(b.U16(0))
	case FieldInt16:
		return int64(b.I16(0))
	case FieldUint32:
		return int64(b.U32(0))
	case FieldInt32:
		return int64(b.I32(0))
	case FieldFixed:
		return b.Fixed(0)
	case FieldVersion:
		return fmt.Sprintf("%d.%d", b.U16(0), b.U16(2))
	case FieldTag:
		return b.Tag(0).String()
	case FieldLongDateTime:
		secs := int64(b.U32(0))<<32 | int64(b.U32(4))
		return epoch1904.Add(time.Duration(secs) * time.Second).Format(time.RFC3339)
	case FieldPanose:
		p := make([]int64, 10)
		for i := range p {
			p[i] = int64(b.U8(i))
		}
		return p
	}
	return nil
}

var recordLayouts = map[string]recordLayout{
	"head": {minSize: 54, fields: []Field{
		{"version", FieldVersion}, {"font_revision", FieldFixed},
		{"checksum_adjustment", FieldUint32}, {"magic_number", FieldUint32},
		{"flags", FieldUint16}, {"units_per_em", FieldUint16},
		{"created", FieldLongDateTime}, {"modified", FieldLongDateTime},
		{"x_min", FieldInt16}, {"y_min", FieldInt16}, {"x_max", FieldInt16}, {"y_max", FieldInt16},
		{"mac_style", FieldUint16}, {"lowest_rec_ppem", FieldUint16},
		{"font_direction_hint", FieldInt16}, {"index_to_loc_format", FieldInt16},
		{"glyph_data_format", FieldInt16},
	}},
	"hhea": {minSize: 36, fields: []Field{
		{"version", FieldVersion}, {"ascender", FieldInt16}, {"descender", FieldInt16},
		{"line_gap", FieldInt16}, {"advance_width_max", FieldUint16},
		{"min_left_side_bearing", FieldInt16}, {"min_right_side_bearing", FieldInt16},
		{"x_max_extent", FieldInt16}, {"caret_slope_rise", FieldInt16},
		{"caret_slope_run", FieldInt16}, {"caret_offset", FieldInt16},
		{"", fieldReserved}, {"", fieldReserved}, {"", fieldReserved}, {"", fieldReserved},
		{"metric_data_format", FieldInt16}, {"number_of_long_metrics", FieldUint16},
	}},
	"vhea": {minSize: 36, fields: []Field{
		{"version", FieldFixed}, {"ascender", FieldInt16}, {"descender", FieldInt16},
		{"line_gap", FieldInt16}, {"advance_height_max", FieldUint16},
		{"min_top_side_bearing", FieldInt16}, {"min_bottom_side_bearing", FieldInt16},
		{"y_max_extent", FieldInt16}, {"caret_slope_rise", FieldInt16},
		{"caret_slope_run", FieldInt16}, {"caret_offset", FieldInt16},
		{"", fieldReserved}, {"", fieldReserved}, {"", fieldReserved}, {"", fieldReserved},
		{"metric_data_format", FieldInt16}, {"number_of_long_ver_metrics", FieldUint16},
	}},
	"maxp": {minSize: 6, fields: []Field{
		{"version", FieldFixed}, {"num_glyphs", FieldUint16},
		{"max_points", FieldUint16}, {"max_contours", FieldUint16},
		{"max_composite_points", FieldUint16}, {"max_composite_contours", FieldUint16},
		{"max_zones", FieldUint16}, {"max_twilight_points", FieldUint16},
		{"max_storage", FieldUint16}, {"max_function_defs", FieldUint16},
		{"max_instruction_defs", FieldUint16}, {"max_stack_elements", FieldUint16},
		{"max_size_of_instructions", FieldUint16}, {"max_component_elements", FieldUint16},
		{"max_component_depth", FieldUint16},
	}, size: func(b binarySegm) int {
		if b.U32(0) == 0x00005000 {
			return 6
		}
		return 32
	}},
	"OS/2": {minSize: 78, fields: []Field{
		{"version", FieldUint16}, {"x_avg_char_width", FieldInt16},
		{"us_weight_class", FieldUint16}, {"us_width_class", FieldUint16},
		{"fs_type", FieldUint16},
		{"y_subscript_x_size", FieldInt16}, {"y_subscript_y_size", FieldInt16},
		{"y_subscript_x_offset", FieldInt16}, {"y_subscript_y_offset", FieldInt16},
		{"y_superscript_x_size", FieldInt16}, {"y_superscript_y_size", FieldInt16},
		{"y_superscript_x_offset", FieldInt16}, {"y_superscript_y_offset", FieldInt16},
		{"y_strikeout_size", FieldInt16}, {"y_strikeout_position", FieldInt16},
		{"s_family_class", FieldInt16}, {"panose_10", FieldPanose},
		{"ul_unicode_range_1", FieldUint32}, {"ul_unicode_range_2", FieldUint32},
		{"ul_unicode_range_3", FieldUint32}, {"ul_unicode_range_4", FieldUint32},
		{"ach_vend_id", FieldTag}, {"fs_selection", FieldUint16},
		{"us_first_char_index", FieldUint16}, {"us_last_char_index", FieldUint16},
		{"s_typo_ascender", FieldInt16}, {"s_typo_descender", FieldInt16},
		{"s_typo_line_gap", FieldInt16},
		{"us_win_ascent", FieldUint16}, {"us_win_descent", FieldUint16},
		{"ul_code_page_range_1", FieldUint32}, {"ul_code_page_range_2", FieldUint32},
		{"sx_height", FieldInt16}, {"s_cap_height", FieldInt16},
		{"us_default_char", FieldUint16}, {"us_break_char", FieldUint16},
		{"us_max_context", FieldUint16},
		{"us_lower_optical_point_size", FieldUint16}, {"us_upper_optical_point_size", FieldUint16},
	}, size: func(b binarySegm) int {
		switch v := b.U16(0); {
		case v == 0:
			return 78
		case v == 1:
			return 86
		case v < 5:
			return 96
		}
		return 100
	}},
	"post": {minSize: 32, fields: []Field{
		{"version", FieldFixed}, {"italic_angle", FieldFixed},
		{"underline_position", FieldInt16}, {"underline_thickness", FieldInt16},
		{"is_fixed_pitch", FieldUint32},
		{"min_mem_type42", FieldUint32}, {"max_mem_type42", FieldUint32},
		{"min_mem_type1", FieldUint32}, {"max_mem_type1", FieldUint32},
	}},
}

// IsFlatRecordTable returns true for tables which FlatRecord is able to decode.
func IsFlatRecordTable(tag Tag) bool {
	_, ok := recordLayouts[tag.String()]
	return ok
}
