package inline

import (
	"fmt"
	"io"

	"github.com/clipseek/clipseek/search"
	"github.com/samber/lo"
)

// Format selects how results are written.
type Format string

const (
	// Text renders a human readable listing.
	Text Format = "text"
	// JSON writes a single Output document.
	JSON Format = "json"
	// Links writes one video URL per line.
	Links Format = "links"
)

// Formats lists every accepted output format.
func Formats() []Format {
	return []Format{Text, JSON, Links}
}

// ParseFormat accepts any of Formats. Empty input means Text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Text, nil
	}

	f := Format(s)
	if !lo.Contains(Formats(), f) {
		return "", fmt.Errorf("unknown output format %q, expected one of %v", s, Formats())
	}

	return f, nil
}

// Options describes one rendering of a finished search.
type Options struct {
	Out    io.Writer
	Format Format
	Query  search.Query
	// Order is the sort key applied after the search, empty when the
	// provider order was kept.
	Order  string
	Videos []search.VideoRecord
	// Width overrides the wrap width of Text output when positive.
	Width int
}
