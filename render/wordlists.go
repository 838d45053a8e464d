package render

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/klauspost/compress/zstd"
	"github.com/npillmayer/fontdiff/otquery"
	"golang.org/x/text/unicode/norm"
)

//go:embed wordlists/*.txt.zst
var embeddedWordlists embed.FS

// Wordlist is a named list of words to render. Script is the name of the
// script the words are written in, or empty if unknown.
type Wordlist struct {
	Name   string
	Script string
	Words  []string
}

// Direction returns the text direction to shape the words with.
func (wl *Wordlist) Direction() di.Direction {
	return DirectionFromScript(wl.Script)
}

// ScriptTag returns the script to shape the words with, or 0 if the script
// of the list is unknown.
func (wl *Wordlist) ScriptTag() language.Script {
	if wl.Script == "" {
		return 0
	}
	if s, ok := otquery.ScriptByName(wl.Script); ok {
		return s
	}
	return 0
}

var rtlScripts = map[string]bool{
	"Arabic":  true,
	"Avestan": true,
	"Hebrew":  true,
	"Syriac":  true,
	"Thaana":  true,
}

// DirectionFromScript returns right-to-left for scripts written that way and
// left-to-right for all others.
func DirectionFromScript(script string) di.Direction {
	if rtlScripts[script] {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

var wordlistCache = struct {
	sync.Mutex
	lists map[string]*Wordlist
}{lists: make(map[string]*Wordlist)}

// GetWordlist returns the built-in wordlist for a script, given by name, e.g.
// "Latin". Lists are decompressed on first use.
func GetWordlist(script string) (*Wordlist, bool) {
	wordlistCache.Lock()
	defer wordlistCache.Unlock()
	if wl, ok := wordlistCache.lists[script]; ok {
		return wl, wl != nil
	}
	wl, err := loadEmbedded(script)
	if err != nil {
		tracer().Debugf("no wordlist for script %s: %v", script, err)
		wl = nil
	}
	wordlistCache.lists[script] = wl
	return wl, wl != nil
}

// BuiltinScripts returns the names of the scripts a wordlist is built in
// for, sorted by name.
func BuiltinScripts() []string {
	entries, err := embeddedWordlists.ReadDir("wordlists")
	if err != nil {
		return nil
	}
	var scripts []string
	for _, e := range entries {
		scripts = append(scripts, strings.TrimSuffix(e.Name(), ".txt.zst"))
	}
	sort.Strings(scripts)
	return scripts
}

func loadEmbedded(script string) (*Wordlist, error) {
	compressed, err := embeddedWordlists.ReadFile("wordlists/" + script + ".txt.zst")
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("corrupt wordlist for %s: %w", script, err)
	}
	words, err := readWords(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Wordlist{Name: script, Script: script, Words: words}, nil
}

// LoadWordlist reads a wordlist from a file with one word per line. Files
// ending in ".zst" are decompressed. The list is named after the file. If
// the name of the file is the name or ISO 15924 code of a script, the words
// are assumed to be written in that script. Otherwise the script is left
// unset and guessed per word.
func LoadWordlist(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	name := filepath.Base(path)
	if strings.HasSuffix(name, ".zst") {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		r = dec
		name = strings.TrimSuffix(name, ".zst")
	}
	words, err := readWords(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read wordlist %s: %w", path, err)
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	wl := &Wordlist{Name: name, Words: words}
	if s, ok := otquery.ScriptByName(name); ok {
		wl.Script = otquery.ScriptName(s)
	}
	return wl, nil
}

// readWords reads non-empty lines, normalized to NFC.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, norm.NFC.String(w))
	}
	return words, scanner.Err()
}
