package ttj

// JustKerns extracts the pair adjustments of a serialized font into a flat
// map keyed "left/right". Class based subtables are expanded to glyph pairs,
// leaving out pairs with a zero value and pairs involving class 0 on either
// side. Values for the same pair coming from several lookups are added up,
// as they would be when shaping.
func JustKerns(font Document) Document {
	kerns := NewMap()
	lookups, ok := font.Lookup("GPOS", "lookup_list")
	if !ok {
		return kerns
	}
	for _, lookup := range lookups.Entries() {
		for _, subtable := range lookup.Items() {
			if typ, _ := subtable.Lookup("type"); !isString(typ, "pair") {
				continue
			}
			if subtable.Has("classes") && subtable.Has("kerns") {
				flattenClassKerns(subtable, kerns)
				continue
			}
			for left, rights := range subtable.Entries() {
				if left == "type" {
					continue
				}
				for right, value := range rights.Entries() {
					if isZeroKern(value) {
						continue
					}
					insertOrMerge(kerns, left+"/"+right, value)
				}
			}
		}
	}
	return kerns
}

func flattenClassKerns(subtable Document, kerns Document) {
	classes, _ := subtable.Get("classes")
	classKerns, _ := subtable.Get("kerns")
	for leftClass, rights := range classKerns.Entries() {
		if leftClass == leftClassName(0) {
			continue
		}
		leftGlyphs, _ := classes.Get(leftClass)
		for rightClass, value := range rights.Entries() {
			if rightClass == rightClassName(0) || isZeroKern(value) {
				continue
			}
			rightGlyphs, _ := classes.Get(rightClass)
			for _, l := range leftGlyphs.Items() {
				left, _ := l.AsString()
				for _, r := range rightGlyphs.Items() {
					right, _ := r.AsString()
					insertOrMerge(kerns, left+"/"+right, value)
				}
			}
		}
	}
}

// isZeroKern reports whether a value record has no effect. Records with fields
// other than advance and placement in x direction are never considered zero.
func isZeroKern(value Document) bool {
	if value.Kind() != KindMap {
		return false
	}
	for k, v := range value.Entries() {
		if k != "x" && k != "x_placement" {
			return false
		}
		if n, ok := v.AsNumber(); !ok || n != 0 {
			return false
		}
	}
	return true
}

// insertOrMerge adds value to the entry for key. Fields are merged one by one.
// Variable values hold absolute values per location, so values are added
// location by location, with a missing location taking the default of its
// side. A plain number counts as the same value at every location.
func insertOrMerge(kerns Document, key string, value Document) {
	existing, ok := kerns.Get(key)
	if !ok || existing.Kind() != KindMap || value.Kind() != KindMap {
		kerns.Set(key, value.Clone())
		return
	}
	for field, v := range value.Entries() {
		old, ok := existing.Get(field)
		if !ok {
			existing.Set(field, v.Clone())
			continue
		}
		existing.Set(field, addVariable(old, v))
	}
}

func addVariable(a, b Document) Document {
	if isRecord(a) && isRecord(b) { // first/second records of a pair
		sum := a.Clone()
		for k, v := range b.Entries() {
			if old, ok := sum.Get(k); ok {
				sum.Set(k, addVariable(old, v))
			} else {
				sum.Set(k, v.Clone())
			}
		}
		return sum
	}
	if n, ok := a.AsNumber(); ok {
		if m, ok := b.AsNumber(); ok {
			return Number(n + m)
		}
	}
	va, vb := asVariable(a), asVariable(b)
	sum := NewMap()
	for _, d := range []Document{va, vb} {
		for loc := range d.Entries() {
			if !sum.Has(loc) {
				sum.Set(loc, Number(valueAt(va, loc)+valueAt(vb, loc)))
			}
		}
	}
	return sum
}

// asVariable returns a copy of a variable value in map form.
func asVariable(d Document) Document {
	if d.Kind() == KindMap {
		return d.Clone()
	}
	m := NewMap()
	if n, ok := d.AsNumber(); ok {
		m.Set("default", Number(n))
	}
	return m
}

// valueAt returns the value of a variable value at a location. Locations
// without an entry have the default value.
func valueAt(v Document, loc string) float64 {
	if x, ok := v.Get(loc); ok {
		n, _ := x.AsNumber()
		return n
	}
	if x, ok := v.Get("default"); ok {
		n, _ := x.AsNumber()
		return n
	}
	return 0
}

func isRecord(d Document) bool {
	return d.Kind() == KindMap && !d.Has("default")
}

func isString(d Document, s string) bool {
	str, ok := d.AsString()
	return ok && str == s
}
