package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjunalabs/pos-backend/internal/modules/catalog"
)

var (
	banner = catalog.Item{ID: 101, Name: "Spanduk Flexi", Price: 15000, Unit: "m²", IsCustomizable: true}
	shirt  = catalog.Item{ID: 201, Name: "Kaos Polos", Price: 45000, Unit: "pcs"}
)

func TestLineTotalSimple(t *testing.T) {
	assert.Equal(t, 45000, LineTotal(NewSimple(shirt, 1)))
	assert.Equal(t, 90000, LineTotal(NewSimple(shirt, 2)))
}

func TestLineTotalDimensioned(t *testing.T) {
	line, err := NewDimensioned(banner, 2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 90000, LineTotal(line))
	assert.Equal(t, 6.0, line.Area())
}

func TestLineTotalWidthDefaultsToOne(t *testing.T) {
	// Meterage goods omit the width.
	line, err := NewDimensioned(banner, 2.5, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, line.Width)
	assert.Equal(t, 75000, LineTotal(line))
}

func TestLineTotalRoundsHalfUpOnceAtMultiplication(t *testing.T) {
	item := catalog.Item{ID: 1, Name: "Tali Meteran", Price: 333, Unit: "m", IsCustomizable: true}
	line, err := NewDimensioned(item, 0.5, 1, 3)
	require.NoError(t, err)
	// 333 × 0.5 = 166.5, rounds to 167 before the quantity applies.
	assert.Equal(t, 501, LineTotal(line))
}

func TestCartTotalIsOrderInvariant(t *testing.T) {
	dim, err := NewDimensioned(banner, 2, 3, 1)
	require.NoError(t, err)
	simple := NewSimple(shirt, 2)

	assert.Equal(t, 180000, CartTotal([]Line{dim, simple}))
	assert.Equal(t, 180000, CartTotal([]Line{simple, dim}))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0, CartTotal(nil))
}

func TestNewDimensionedValidation(t *testing.T) {
	_, err := NewDimensioned(banner, 0, 1, 1)
	assert.Error(t, err)

	_, err = NewDimensioned(banner, -2, 1, 1)
	assert.Error(t, err)

	_, err = NewDimensioned(banner, 2, -1, 1)
	assert.Error(t, err)

	_, err = NewDimensioned(banner, 2, 1, 0)
	assert.Error(t, err)
}
