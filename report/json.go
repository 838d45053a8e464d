package report

import (
	"encoding/json"
	"io"
)

// WriteJSON writes a report as JSON, either compact or indented.
func WriteJSON(w io.Writer, r *Report, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(r)
}
