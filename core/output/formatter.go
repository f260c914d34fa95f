// Package output provides output formatting for quote results.
// This package produces human and machine-readable renderings; the
// QuoteResult itself is already display-ready, so formatters only lay it
// out, they never do further math.
package output

import (
	"io"

	"scanquote/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal breakdown
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter renders a quote result in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the quote result
	Render(w io.Writer, result *types.QuoteResult) error
}

// Options controls rendering behavior shared by formatters
type Options struct {
	// ShowCostBasis includes internal cost columns; off for client-facing
	// output
	ShowCostBasis bool
}

// New returns the formatter for a format name, defaulting to CLI
func New(format Format, opts Options) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{Options: opts}
	}
}
