package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/fontdiff/ttj"
	"github.com/pterm/pterm"
)

// maxRows is the maximum number of entries listed by 'ls'.
const maxRows = 64

func loadOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return errors.New("load needs a font name or path"), false
	}
	slot := 0
	switch strings.ToLower(op.format) {
	case "", "a":
	case "b":
		slot = 1
	default:
		return fmt.Errorf("invalid font slot %q, expected a or b", op.format), false
	}
	if err := intp.loadFont(name, slot); err != nil {
		return err, false
	}
	intp.path = intp.path[:0]
	return nil, false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	data := [][]string{
		{"Table", "A", "B"},
	}
	for _, tag := range tableTags(intp) {
		row := []string{tag, "", ""}
		for slot, f := range intp.fonts {
			if f == nil {
				continue
			}
			if t, ok := f.doc.Get(tag); ok {
				row[slot+1] = describe(t)
			} else {
				row[slot+1] = "-"
			}
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// tableTags returns the tags of the tables of font A, followed by those
// present in font B only.
func tableTags(intp *Intp) []string {
	tags := intp.fonts[0].doc.Keys()
	if intp.fonts[1] != nil {
		for _, tag := range intp.fonts[1].doc.Keys() {
			if !intp.fonts[0].doc.Has(tag) {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// cdOp descends along a path of keys separated by '/'. A leading '/'
// starts at the top level, ".." goes up one level.
func cdOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok || arg == "/" {
		intp.path = intp.path[:0]
		return nil, false
	}
	path := append([]string(nil), intp.path...)
	if strings.HasPrefix(arg, "/") {
		path = path[:0]
	}
	for _, key := range strings.Split(strings.Trim(arg, "/"), "/") {
		switch key {
		case "", ".":
			continue
		case "..":
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}
		path = append(path, key)
		if !intp.exists(path) {
			return fmt.Errorf("no entry %s at /%s", key, strings.Join(path[:len(path)-1], "/")), false
		}
	}
	intp.path = path
	tracer().Debugf("path is now /%s", strings.Join(intp.path, "/"))
	return nil, false
}

// exists reports whether a path leads to an entry in font A or font B.
func (intp *Intp) exists(path []string) bool {
	saved := intp.path
	defer func() { intp.path = saved }()
	intp.path = path
	_, okA := intp.node(0)
	_, okB := intp.node(1)
	return okA || okB
}

func upOp(intp *Intp, op *Op) (error, bool) {
	n := 1
	if arg, ok := op.hasArg(); ok {
		var err error
		if n, err = strconv.Atoi(arg); err != nil || n < 0 {
			return fmt.Errorf("number of levels not numeric: %v", arg), false
		}
	}
	n = min(n, len(intp.path))
	intp.path = intp.path[:len(intp.path)-n]
	return nil, false
}

func lsOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	slot := 0
	if strings.ToLower(op.arg) == "b" {
		if intp.fonts[1] == nil {
			return ERR_NO_SECOND_FONT, false
		}
		slot = 1
	}
	d, ok := intp.node(slot)
	if !ok {
		return fmt.Errorf("font %c has no entry at /%s", 'A'+slot, strings.Join(intp.path, "/")), false
	}
	data := [][]string{
		{"Key", "Value"},
	}
	switch d.Kind() {
	case ttj.KindMap:
		for key, v := range d.Entries() {
			data = append(data, []string{key, describe(v)})
			if len(data) > maxRows {
				break
			}
		}
	case ttj.KindArray:
		for i, v := range d.Items() {
			data = append(data, []string{strconv.Itoa(i), describe(v)})
			if len(data) > maxRows {
				break
			}
		}
	default:
		pterm.Println(describe(d))
		return nil, false
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if d.Len() > maxRows {
		pterm.Printf("... %d more entries\n", d.Len()-maxRows)
	}
	return nil, false
}

// describe returns a short description of a document: the value of scalars,
// kind and size of arrays and maps.
func describe(d ttj.Document) string {
	switch d.Kind() {
	case ttj.KindMap, ttj.KindArray:
		return fmt.Sprintf("%s(%d)", d.Kind(), d.Len())
	}
	s := []rune(d.String())
	if len(s) > 60 {
		return string(s[:57]) + "..."
	}
	return string(s)
}
