package render

import (
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/fontdiff/dfont"
)

// Defaults for comparing renderings.
const (
	DefaultWordsFontSize   = 16
	DefaultGlyphsFontSize  = 32
	DefaultWordsThreshold  = 16
	DefaultGlyphsThreshold = 8
	DefaultGrayFuzz        = 8
)

// DriverOptions controls a comparison of renderings.
//
// Threshold is the number of differing pixels a rendering has to exceed to
// count as different. It is an absolute count and not relative to the size
// of the rendering, so that a changed glyph within a long word is not
// diluted. GrayFuzz is the amount by which gray values of a pixel may differ
// without the pixel counting as different.
type DriverOptions struct {
	FontSize   float32
	Threshold  int
	GrayFuzz   uint8
	Jobs       int // number of workers; 0 means one per CPU
	Direction  di.Direction
	Script     language.Script // 0 means guess from the text
	Codepoints *treeset.Set    // if set, words using other code-points are skipped
}

// DefaultOptions returns the options for comparing words.
func DefaultOptions() DriverOptions {
	return DriverOptions{
		FontSize:  DefaultWordsFontSize,
		Threshold: DefaultWordsThreshold,
		GrayFuzz:  DefaultGrayFuzz,
		Jobs:      runtime.NumCPU(),
	}
}

// GlyphOptions returns the options for comparing single glyphs.
func GlyphOptions() DriverOptions {
	opts := DefaultOptions()
	opts.FontSize = DefaultGlyphsFontSize
	opts.Threshold = DefaultGlyphsThreshold
	return opts
}

// Difference describes a text whose renderings in two fonts differ.
// BufferB is set only if the fonts shape the text differently.
type Difference struct {
	Word            string  `json:"word"`
	BufferA         string  `json:"buffer_a"`
	BufferB         *string `json:"buffer_b,omitempty"`
	DifferingPixels int     `json:"differing_pixels"`
	OTFeatures      string  `json:"ot_features,omitempty"`
	Lang            string  `json:"lang,omitempty"`
}

// DiffManyWords renders a list of words with two fonts and returns the
// words rendered differently, ordered by the number of differing pixels,
// most different first. Both fonts have to be positioned at the location to
// compare before calling DiffManyWords.
//
// Words are distributed to a pool of workers, each with its own pair of
// renderers. A word is skipped if all of its glyphs, as shaped by font a,
// have already been compared as part of another word.
func DiffManyWords(a, b *dfont.DFont, words []string, opts DriverOptions) ([]Difference, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = max(1, min(jobs, len(words)))
	seen := newSeenSet()
	queue := make(chan int)
	results := make([][]indexedDifference, jobs)
	errs := make([]error, jobs)
	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			worker := &wordWorker{a: a, b: b, opts: opts, seen: seen}
			for i := range queue {
				if errs[w] != nil {
					continue // drain the queue
				}
				d, ok, err := worker.compare(words[i])
				if err != nil {
					errs[w] = err
					continue
				}
				if ok {
					results[w] = append(results[w], indexedDifference{index: i, diff: d})
				}
			}
		}(w)
	}
	for i := range words {
		queue <- i
	}
	close(queue)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	var all []indexedDifference
	for _, r := range results {
		all = append(all, r...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].diff.DifferingPixels != all[j].diff.DifferingPixels {
			return all[i].diff.DifferingPixels > all[j].diff.DifferingPixels
		}
		return all[i].index < all[j].index
	})
	diffs := make([]Difference, len(all))
	for i, d := range all {
		diffs[i] = d.diff
	}
	tracer().Debugf("%d of %d words rendered differently", len(diffs), len(words))
	return diffs, nil
}

type indexedDifference struct {
	index int
	diff  Difference
}

// wordWorker compares words with renderers of its own, created on first use.
type wordWorker struct {
	a, b   *dfont.DFont
	opts   DriverOptions
	seen   *seenSet
	ra, rb *Renderer
}

func (ww *wordWorker) compare(word string) (Difference, bool, error) {
	if !ww.supported(word) {
		return Difference{}, false, nil
	}
	if ww.ra == nil {
		var err error
		if ww.ra, err = NewRenderer(ww.a, ww.opts.FontSize, ww.opts.Direction, ww.opts.Script); err != nil {
			return Difference{}, false, err
		}
		if ww.rb, err = NewRenderer(ww.b, ww.opts.FontSize, ww.opts.Direction, ww.opts.Script); err != nil {
			return Difference{}, false, err
		}
	}
	bufferA, pathA, ok := ww.ra.StringToPositionedGlyphs(word)
	if !ok {
		return Difference{}, false, nil
	}
	if !ww.seen.add(strings.Split(bufferA, GlyphSeparator)) {
		return Difference{}, false, nil
	}
	bufferB, pathB, ok := ww.rb.StringToPositionedGlyphs(word)
	if !ok {
		return Difference{}, false, nil
	}
	pixels, ok := differingPixels(pathA, pathB, ww.opts)
	if !ok {
		return Difference{}, false, nil
	}
	d := Difference{Word: word, BufferA: bufferA, DifferingPixels: pixels}
	if bufferB != bufferA {
		d.BufferB = &bufferB
	}
	return d, true, nil
}

// differingPixels rasterizes two positioned paths and counts the pixels
// in which they differ. Counts not above the threshold do not count as a
// difference.
func differingPixels(pathA, pathB Path, opts DriverOptions) (int, bool) {
	if pathA.Equal(pathB) {
		return 0, false
	}
	pixels := CountDifferences(RenderPositionedGlyphs(pathA), RenderPositionedGlyphs(pathB), opts.GrayFuzz)
	return pixels, pixels > opts.Threshold
}

// supported reports whether all characters of a word are in the set of
// code-points to test.
func (ww *wordWorker) supported(word string) bool {
	if ww.opts.Codepoints == nil {
		return true
	}
	for _, r := range word {
		if !ww.opts.Codepoints.Contains(r) {
			return false
		}
	}
	return true
}

// seenSet holds the glyphs, with their offsets, already compared. It is
// shared between workers.
type seenSet struct {
	mu     sync.RWMutex
	glyphs map[string]struct{}
}

func newSeenSet() *seenSet {
	return &seenSet{glyphs: make(map[string]struct{})}
}

func (s *seenSet) contains(glyphs []string) bool {
	for _, g := range glyphs {
		if _, ok := s.glyphs[g]; !ok {
			return false
		}
	}
	return true
}

// add inserts glyphs into the set. It returns false if all of them have
// been seen before.
func (s *seenSet) add(glyphs []string) bool {
	s.mu.RLock()
	all := s.contains(glyphs)
	s.mu.RUnlock()
	if all {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.contains(glyphs) {
		return false
	}
	for _, g := range glyphs {
		s.glyphs[g] = struct{}{}
	}
	return true
}
