package render

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/dfont"
	"github.com/npillmayer/fontdiff/internal/fonttest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuiltinWordlists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	for _, script := range []string{"Latin", "Greek", "Cyrillic", "Arabic", "Hebrew", "Common"} {
		if !slices.Contains(BuiltinScripts(), script) {
			t.Errorf("expected built-in wordlist for %s", script)
		}
	}
	wl, ok := GetWordlist("Latin")
	if !ok {
		t.Fatalf("cannot load Latin wordlist")
	}
	if wl.Name != "Latin" || !slices.Contains(wl.Words, "the") {
		t.Errorf("unexpected Latin wordlist %s with %d words", wl.Name, len(wl.Words))
	}
	if wl.Direction() != di.DirectionLTR || wl.ScriptTag() != language.Latin {
		t.Errorf("expected Latin to be shaped left-to-right as Latin script")
	}
	wl, ok = GetWordlist("Arabic")
	if !ok || wl.Direction() != di.DirectionRTL {
		t.Errorf("expected Arabic wordlist shaped right-to-left")
	}
	if _, ok = GetWordlist("Klingon"); ok {
		t.Errorf("expected no wordlist for Klingon")
	}
}

func TestLoadWordlist(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "Greek.txt")
	if err := os.WriteFile(path, []byte("αβγ\n\n  cafe\u0301  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wl, err := LoadWordlist(path)
	if err != nil {
		t.Fatal(err)
	}
	if wl.Name != "Greek" || wl.Script != "Greek" {
		t.Errorf("expected wordlist named after Greek script, have %q/%q", wl.Name, wl.Script)
	}
	if !slices.Equal(wl.Words, []string{"αβγ", "caf\u00e9"}) {
		t.Errorf("expected trimmed NFC words, have %q", wl.Words)
	}
	path = filepath.Join(dir, "mywords.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if wl, err = LoadWordlist(path); err != nil || wl.Name != "mywords" || wl.Script != "" {
		t.Errorf("expected custom wordlist without script, have %+v, %v", wl, err)
	}
	if _, err = LoadWordlist(filepath.Join(dir, "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestCmapDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.render")
	defer teardown()
	//
	names := []string{".notdef", "A", "B", "C"}
	a, err := dfont.New(fonttest.Basic(names, map[rune]uint16{'A': 1, 'B': 2}).Bytes())
	if err != nil {
		t.Fatal(err)
	}
	b, err := dfont.New(fonttest.Basic(names, map[rune]uint16{'B': 2, 'C': 3}).Bytes())
	if err != nil {
		t.Fatal(err)
	}
	cd := NewCmapDiff(a, b)
	if !cd.IsSomething() {
		t.Fatalf("expected cmap difference")
	}
	if len(cd.Missing) != 1 || cd.Missing[0].Char != "A" || cd.Missing[0].Name != "LATIN CAPITAL LETTER A" {
		t.Errorf("expected 'A' to be missing, have %v", cd.Missing)
	}
	if len(cd.New) != 1 || cd.New[0].String() != "C (U+0043) LATIN CAPITAL LETTER C" {
		t.Errorf("expected 'C' to be new, have %v", cd.New)
	}
	if NewCmapDiff(a, a).IsSomething() {
		t.Errorf("expected no cmap difference of a font with itself")
	}
}
