package ttj

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultMaxChanges is the default number of differing children a map or
// array may have before Diff gives up on it.
const DefaultMaxChanges = 128

const epsilon = 1e-9

// Diff compares two documents and returns a delta document.
//
// Scalars of the same kind yield null if they are equal, and [left, right]
// otherwise. Arrays and maps are compared element-wise; the result is a map
// holding the differing children only, keyed by index for arrays. A
// container without differing children yields null. If more than maxChanges
// children differ, the result is {"error": "<n> changes, check manually"}.
// The ceiling applies to every level of the tree separately.
//
// Values of different kinds, including null against non-null, are reported as
// [left, right] without looking into them.
func Diff(left, right Document, maxChanges int) Document {
	if left.kind != right.kind {
		return NewArray(left, right)
	}
	switch left.kind {
	case KindNull:
		return Null()
	case KindBool, KindNumber, KindString:
		if left.Equal(right) {
			return Null()
		}
		return NewArray(left, right)
	case KindArray:
		res := NewMap()
		n := max(left.Len(), right.Len())
		for i := range n {
			if d := Diff(left.Index(i), right.Index(i), maxChanges); IsSomething(d) {
				res.Set(strconv.Itoa(i), d)
			}
		}
		return collapse(res, maxChanges)
	}
	res := NewMap()
	for k, l := range left.Entries() {
		r, _ := right.Get(k)
		if d := Diff(l, r, maxChanges); IsSomething(d) {
			res.Set(k, d)
		}
	}
	for k, r := range right.Entries() {
		if left.Has(k) {
			continue
		}
		if d := Diff(Null(), r, maxChanges); IsSomething(d) {
			res.Set(k, d)
		}
	}
	return collapse(res, maxChanges)
}

func collapse(res Document, maxChanges int) Document {
	if res.Len() > maxChanges {
		return ErrorDocument(fmt.Sprintf("%d changes, check manually", res.Len()))
	}
	if res.Len() == 0 {
		return Null()
	}
	return res
}

// ErrorDocument returns a map with a single entry "error".
func ErrorDocument(msg string) Document {
	d := NewMap()
	d.Set("error", String(msg))
	return d
}

// IsErrorDocument reports whether d is a map consisting of a single entry
// "error", as produced by Diff for subtrees with too many changes.
func IsErrorDocument(d Document) (string, bool) {
	if d.Kind() != KindMap || d.Len() != 1 {
		return "", false
	}
	e, ok := d.Get("error")
	if !ok {
		return "", false
	}
	return e.AsString()
}

// IsSomething is the truthiness of a document: null, false, zero, the empty
// string and empty containers are nothing, everything else is something.
func IsSomething(d Document) bool {
	switch d.kind {
	case KindNull:
		return false
	case KindBool:
		return d.b
	case KindNumber:
		return math.Abs(d.n) > epsilon
	case KindString:
		return d.s != ""
	}
	return d.Len() > 0
}

// IsPair reports whether d is a leaf delta [left, right] and returns both
// sides.
func IsPair(d Document) (Document, Document, bool) {
	if d.Kind() != KindArray || d.Len() != 2 {
		return Null(), Null(), false
	}
	return d.Index(0), d.Index(1), true
}
