package report

import (
	"sort"

	"github.com/npillmayer/fontdiff/render"
	"github.com/npillmayer/fontdiff/ttj"
)

// Report is the result of comparing two fonts. Parts not tested are nil.
type Report struct {
	Tables    *ttj.Document    `json:"tables,omitempty"`
	Kerns     *ttj.Document    `json:"kerns,omitempty"`
	CmapDiff  *render.CmapDiff `json:"cmap_diff,omitempty"`
	Locations []LocationResult `json:"locations,omitempty"`
}

// LocationResult holds the differences found at one location in design
// space. Location is the name of a named instance or a list of axis
// settings, Coords the user space coordinates the fonts were set to.
type LocationResult struct {
	Location string                         `json:"location"`
	Coords   map[string]float64             `json:"coords,omitempty"`
	Error    string                         `json:"error,omitempty"`
	Glyphs   []render.GlyphDiff             `json:"glyphs,omitempty"`
	Words    map[string][]render.Difference `json:"words,omitempty"` // per wordlist
}

// ErrorResult creates the result for a location which could not be tested.
func ErrorResult(location string, err error) LocationResult {
	return LocationResult{Location: location, Error: err.Error()}
}

// IsSomething reports whether there is anything to report for a location.
func (lr LocationResult) IsSomething() bool {
	return lr.Error != "" || len(lr.Glyphs) > 0 || len(lr.Words) > 0
}

// Wordlists returns the names of the wordlists with differences, sorted.
func (lr LocationResult) Wordlists() []string {
	names := make([]string, 0, len(lr.Words))
	for name := range lr.Words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AxisTags returns the tags of Coords, sorted.
func (lr LocationResult) AxisTags() []string {
	tags := make([]string, 0, len(lr.Coords))
	for tag := range lr.Coords {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
