package ot

import (
	"errors"
	"math"
)

// Reading bytes from a font's binary representation

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data. We use it throughout this package to
// navigate the font's binary data.
//
// Accessors with capitalized names return 0 for out-of-bounds access. Parsers
// check the size of a structure with `need` before reading its fields.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// need checks that b holds at least n bytes.
func (b binarySegm) need(n int, what string) error {
	if n < 0 || len(b) < n {
		return errFontFormat(what + " truncated")
	}
	return nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

func (b binarySegm) U8(i int) uint8 {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

func (b binarySegm) U16(i int) uint16 {
	n, err := b.u16(i)
	if err != nil {
		return 0
	}
	return n
}

func (b binarySegm) I16(i int) int16 {
	return int16(b.U16(i))
}

func (b binarySegm) U24(i int) uint32 {
	if i < 0 || i+3 > len(b) {
		return 0
	}
	return uint32(b[i])<<16 | uint32(b[i+1])<<8 | uint32(b[i+2])
}

func (b binarySegm) U32(i int) uint32 {
	n, err := b.u32(i)
	if err != nil {
		return 0
	}
	return n
}

func (b binarySegm) I32(i int) int32 {
	return int32(b.U32(i))
}

// F2Dot14 reads a signed 2.14 fixed point number.
func (b binarySegm) F2Dot14(i int) float64 {
	return f2dot14ToFloat(b.I16(i))
}

// Fixed reads a signed 16.16 fixed point number.
func (b binarySegm) Fixed(i int) float64 {
	return float64(b.I32(i)) / 65536
}

// Tag reads a 4-byte tag.
func (b binarySegm) Tag(i int) Tag {
	return Tag(b.U32(i))
}

// glyphs reads n consecutive glyph IDs starting at offset i.
func (b binarySegm) glyphs(i, n int) ([]GlyphIndex, error) {
	if _, err := b.view(i, 2*n); err != nil {
		return nil, err
	}
	g := make([]GlyphIndex, n)
	for k := range n {
		g[k] = GlyphIndex(u16(b[i+2*k:]))
	}
	return g, nil
}

// uint16s reads n consecutive uint16 values starting at offset i.
func (b binarySegm) uint16s(i, n int) ([]uint16, error) {
	if _, err := b.view(i, 2*n); err != nil {
		return nil, err
	}
	r := make([]uint16, n)
	for k := range n {
		r[k] = u16(b[i+2*k:])
	}
	return r, nil
}

// offset16 follows a 16-bit offset stored at position at, relative to b.
// A NULL offset yields (nil, nil).
func (b binarySegm) offset16(at int) (binarySegm, error) {
	off, err := b.u16(at)
	if err != nil {
		return nil, err
	}
	if off == 0 {
		return nil, nil
	}
	if int(off) >= len(b) {
		return nil, errBufferBounds
	}
	return b[off:], nil
}

// offset32 follows a 32-bit offset stored at position at, relative to b.
// A NULL offset yields (nil, nil).
func (b binarySegm) offset32(at int) (binarySegm, error) {
	off, err := b.u32(at)
	if err != nil {
		return nil, err
	}
	if off == 0 {
		return nil, nil
	}
	if uint64(off) >= uint64(len(b)) {
		return nil, errBufferBounds
	}
	return b[off:], nil
}

// offsetFrom follows an offset value relative to b.
func (b binarySegm) offsetFrom(off uint32) (binarySegm, error) {
	if off == 0 {
		return nil, nil
	}
	if uint64(off) >= uint64(len(b)) {
		return nil, errBufferBounds
	}
	return b[off:], nil
}

// --- Numbers ---------------------------------------------------------------

func f2dot14ToFloat(v int16) float64 {
	return float64(v) / 16384
}

// checkedMulInt checks for overflow in multiplication of two integers
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, errFontFormat("integer overflow in size calculation")
	}
	if a < 0 || b < 0 {
		return 0, errFontFormat("negative size")
	}
	return a * b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, errFontFormat("integer overflow in offset calculation")
	}
	return a + b, nil
}
