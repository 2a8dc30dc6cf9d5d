// Package print builds page descriptions for the print endpoints and
// renders their PDF variants.
package print

import (
	"net/url"
	"strconv"
	"time"

	"example.com/barcoded/internal/code"
)

// Layout selects how a page arranges its codes.
type Layout string

const (
	// OnePerPage gives every code its own printed sheet.
	OnePerPage Layout = "one-per-page"
	// GridOnePage flows all codes into a wrapping grid on a single page.
	GridOnePage Layout = "grid-one-page"
)

// Cell pairs one code with the image URL a print page embeds for it.
type Cell struct {
	Code     code.Code
	ImageURL string
}

// Page describes a printable document: an ordered cell list plus the layout
// the presentation layer should apply. It carries no rendering logic.
type Page struct {
	Layout Layout
	Cells  []Cell
}

// IsGrid reports whether the page uses the single-page grid layout,
// a convenience for templates.
func (p Page) IsGrid() bool { return p.Layout == GridOnePage }

// now is swapped out by tests that pin the cache-busting token.
var now = time.Now

// imageURL builds the preview URL for a code with a cache-busting timestamp
// token, so each page load re-fetches (and re-renders) the image instead of
// hitting an intermediate cache.
func imageURL(c code.Code) string {
	q := url.Values{}
	q.Set("data", c.String())
	q.Set("ts", strconv.FormatInt(now().UnixNano(), 10))
	return "/barcode/preview?" + q.Encode()
}

// ComposeSingle describes a one-code print page.
func ComposeSingle(c code.Code) Page {
	return Page{
		Layout: OnePerPage,
		Cells:  []Cell{{Code: c, ImageURL: imageURL(c)}},
	}
}

// ComposeBatch describes a multi-code document in the batch's order.
func ComposeBatch(batch code.Batch, layout Layout) Page {
	cells := make([]Cell, len(batch))
	for i, c := range batch {
		cells[i] = Cell{Code: c, ImageURL: imageURL(c)}
	}
	return Page{Layout: layout, Cells: cells}
}
