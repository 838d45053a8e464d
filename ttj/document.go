package ttj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Kind is the kind of value a Document holds.
type Kind int8

// Document kinds
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	}
	return "<unknown>"
}

// Document is a generic tree value: null, boolean, number, string, an ordered
// array of Documents or a map from strings to Documents. Map entries keep
// their insertion order, which is used for display but never for comparison.
//
// The zero value is the null Document. Documents of kind array and map share
// their contents when copied; use Clone to get an independent copy.
type Document struct {
	kind  Kind
	b     bool
	n     float64
	s     string
	items *[]Document
	m     *linkedhashmap.Map // string → Document
}

// Null returns the null Document.
func Null() Document {
	return Document{}
}

// Bool returns a boolean Document.
func Bool(b bool) Document {
	return Document{kind: KindBool, b: b}
}

// Number returns a numeric Document.
func Number(n float64) Document {
	return Document{kind: KindNumber, n: n}
}

// Int returns a numeric Document for an integer value.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32](n T) Document {
	return Document{kind: KindNumber, n: float64(n)}
}

// String returns a string Document.
func String(s string) Document {
	return Document{kind: KindString, s: s}
}

// NewArray returns an array Document holding items.
func NewArray(items ...Document) Document {
	arr := make([]Document, len(items))
	copy(arr, items)
	return Document{kind: KindArray, items: &arr}
}

// NewMap returns an empty map Document.
func NewMap() Document {
	return Document{kind: KindMap, m: linkedhashmap.New()}
}

// StringArray returns an array Document of strings.
func StringArray(strs []string) Document {
	arr := make([]Document, len(strs))
	for i, s := range strs {
		arr[i] = String(s)
	}
	return Document{kind: KindArray, items: &arr}
}

// Kind returns the kind of d.
func (d Document) Kind() Kind {
	return d.kind
}

// IsNull is true for the null Document.
func (d Document) IsNull() bool {
	return d.kind == KindNull
}

// AsBool returns the value of a boolean Document.
func (d Document) AsBool() (bool, bool) {
	return d.b, d.kind == KindBool
}

// AsNumber returns the value of a numeric Document.
func (d Document) AsNumber() (float64, bool) {
	return d.n, d.kind == KindNumber
}

// AsString returns the value of a string Document.
func (d Document) AsString() (string, bool) {
	return d.s, d.kind == KindString
}

// Len returns the number of items of an array or the number of entries of a map.
// Other kinds have length 0.
func (d Document) Len() int {
	switch d.kind {
	case KindArray:
		return len(*d.items)
	case KindMap:
		return d.m.Size()
	}
	return 0
}

// Index returns item i of an array Document, or null.
func (d Document) Index(i int) Document {
	if d.kind != KindArray || i < 0 || i >= len(*d.items) {
		return Null()
	}
	return (*d.items)[i]
}

// Append adds items to an array Document. It panics for other kinds.
func (d Document) Append(items ...Document) {
	if d.kind != KindArray {
		panic(fmt.Sprintf("ttj: append to document of kind %s", d.kind))
	}
	*d.items = append(*d.items, items...)
}

// Items iterates over the items of an array Document.
func (d Document) Items() iter.Seq2[int, Document] {
	return func(yield func(int, Document) bool) {
		if d.kind != KindArray {
			return
		}
		for i, item := range *d.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Get returns the entry for key of a map Document.
func (d Document) Get(key string) (Document, bool) {
	if d.kind != KindMap {
		return Null(), false
	}
	v, ok := d.m.Get(key)
	if !ok {
		return Null(), false
	}
	return v.(Document), true
}

// Lookup follows a path of keys through nested maps.
func (d Document) Lookup(path ...string) (Document, bool) {
	for _, key := range path {
		var ok bool
		if d, ok = d.Get(key); !ok {
			return Null(), false
		}
	}
	return d, true
}

// Set inserts or replaces the entry for key of a map Document. Replacing
// keeps the position of the key. It panics for other kinds.
func (d Document) Set(key string, value Document) {
	if d.kind != KindMap {
		panic(fmt.Sprintf("ttj: set key on document of kind %s", d.kind))
	}
	d.m.Put(key, value)
}

// Has reports whether a map Document has an entry for key.
func (d Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the keys of a map Document in insertion order.
func (d Document) Keys() []string {
	if d.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, d.m.Size())
	for _, k := range d.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Entries iterates over the entries of a map Document in insertion order.
func (d Document) Entries() iter.Seq2[string, Document] {
	return func(yield func(string, Document) bool) {
		if d.kind != KindMap {
			return
		}
		it := d.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(Document)) {
				return
			}
		}
	}
}

// Equal compares two Documents structurally. Map entries are compared
// regardless of their order.
func (d Document) Equal(other Document) bool {
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case KindNull:
		return true
	case KindBool:
		return d.b == other.b
	case KindNumber:
		return d.n == other.n
	case KindString:
		return d.s == other.s
	case KindArray:
		if d.Len() != other.Len() {
			return false
		}
		for i, item := range d.Items() {
			if !item.Equal(other.Index(i)) {
				return false
			}
		}
		return true
	}
	if d.Len() != other.Len() {
		return false
	}
	for k, v := range d.Entries() {
		w, ok := other.Get(k)
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	switch d.kind {
	case KindArray:
		c := NewArray()
		for _, item := range d.Items() {
			c.Append(item.Clone())
		}
		return c
	case KindMap:
		c := NewMap()
		for k, v := range d.Entries() {
			c.Set(k, v.Clone())
		}
		return c
	}
	return d
}

// --- JSON ------------------------------------------------------------------

// MarshalJSON writes d as JSON, keeping the order of map entries.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d Document) writeJSON(w *bytes.Buffer) error {
	switch d.kind {
	case KindNull:
		w.WriteString("null")
	case KindBool:
		w.WriteString(strconv.FormatBool(d.b))
	case KindNumber:
		if math.IsNaN(d.n) || math.IsInf(d.n, 0) {
			return fmt.Errorf("ttj: cannot encode number %v as JSON", d.n)
		}
		w.WriteString(formatNumber(d.n))
	case KindString:
		s, _ := json.Marshal(d.s)
		w.Write(s)
	case KindArray:
		w.WriteByte('[')
		for i, item := range d.Items() {
			if i > 0 {
				w.WriteByte(',')
			}
			if err := item.writeJSON(w); err != nil {
				return err
			}
		}
		w.WriteByte(']')
	case KindMap:
		w.WriteByte('{')
		first := true
		for k, v := range d.Entries() {
			if !first {
				w.WriteByte(',')
			}
			first = false
			key, _ := json.Marshal(k)
			w.Write(key)
			w.WriteByte(':')
			if err := v.writeJSON(w); err != nil {
				return err
			}
		}
		w.WriteByte('}')
	}
	return nil
}

// formatNumber prints integral values without fraction and exponent.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// UnmarshalJSON reads a JSON value into d, keeping the order of object keys.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	doc, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("ttj: trailing data after JSON value")
	}
	*d = doc
	return nil
}

func decodeJSON(dec *json.Decoder) (Document, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return Null(), err
		}
		return Number(n), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			arr := NewArray()
			for dec.More() {
				item, err := decodeJSON(dec)
				if err != nil {
					return Null(), err
				}
				arr.Append(item)
			}
			_, err := dec.Token() // ']'
			return arr, err
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				value, err := decodeJSON(dec)
				if err != nil {
					return Null(), err
				}
				m.Set(keyTok.(string), value)
			}
			_, err := dec.Token() // '}'
			return m, err
		}
	}
	return Null(), fmt.Errorf("ttj: unexpected JSON token %v", tok)
}

// String returns the compact JSON representation of d.
func (d Document) String() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s: %v>", d.kind, err)
	}
	return string(b)
}

// Indent returns an indented JSON representation of d.
func (d Document) Indent() string {
	b, err := d.MarshalJSON()
	if err != nil {
		return d.String()
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}
	return out.String()
}
