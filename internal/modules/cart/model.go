package cart

import (
	"github.com/google/uuid"

	"github.com/arjunalabs/pos-backend/internal/apierr"
	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
)

// LineKind tags the two cart line variants. A simple line is priced per whole
// unit; a dimensioned line is priced per area chosen at add-to-cart time.
type LineKind string

const (
	LineSimple      LineKind = "simple"
	LineDimensioned LineKind = "dimensioned"
)

// Line is one cart entry: an item snapshot plus quantity, and for dimensioned
// lines the chosen length and width plus a synthetic id so removal stays
// unambiguous. Use NewSimple/NewDimensioned; they keep the variants valid
// (dimensions are set iff Kind is LineDimensioned).
type Line struct {
	Kind   LineKind     `json:"kind"`
	ID     string       `json:"id,omitempty"`
	Item   catalog.Item `json:"item"`
	Qty    int          `json:"qty"`
	Length float64      `json:"length,omitempty"`
	Width  float64      `json:"width,omitempty"`
}

// NewSimple builds a per-unit line.
func NewSimple(item catalog.Item, qty int) Line {
	return Line{Kind: LineSimple, Item: item, Qty: qty}
}

// NewDimensioned builds an area-priced line. Length must be positive; a zero
// width means "omitted" and defaults to 1 for meterage goods, anything
// negative is rejected. Each call yields a distinct line id.
func NewDimensioned(item catalog.Item, length, width float64, qty int) (Line, error) {
	if length <= 0 {
		return Line{}, apierr.Validation("length must be greater than zero")
	}
	if width < 0 {
		return Line{}, apierr.Validation("width must be greater than zero")
	}
	if width == 0 {
		width = 1
	}
	if qty < 1 {
		return Line{}, apierr.Validation("quantity must be at least 1")
	}
	return Line{
		Kind:   LineDimensioned,
		ID:     uuid.NewString(),
		Item:   item,
		Qty:    qty,
		Length: length,
		Width:  width,
	}, nil
}

// Area returns length × width for dimensioned lines, 0 otherwise.
func (l Line) Area() float64 {
	if l.Kind != LineDimensioned {
		return 0
	}
	return l.Length * l.Width
}
