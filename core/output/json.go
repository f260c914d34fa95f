// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"

	"scanquote/core/types"
)

// JSONFormatter renders the quote result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the quote result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
