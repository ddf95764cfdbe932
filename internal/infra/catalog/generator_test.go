package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(42)
	second := Generate(42)

	assert.Equal(t, first, second, "same seed must reproduce the same catalog")

	other := Generate(7)
	require.Equal(t, len(first), len(other), "product count and id sequence are seed-independent")
	assert.NotEqual(t, first, other, "randomized fields vary with the seed")
}

func TestGenerate_FlagshipLeads(t *testing.T) {
	products := Generate(1)

	require.NotEmpty(t, products)
	assert.Equal(t, FlagshipID, products[0].ID)
	assert.True(t, products[0].IsMall)
}

func TestGenerate_IDNamespace(t *testing.T) {
	products := Generate(1)

	for _, p := range products[1:] {
		assert.True(t, strings.HasPrefix(p.ID, "gen-"), "unexpected id %q", p.ID)
	}
}

func TestGenerate_GalleryNeverEmpty(t *testing.T) {
	for _, p := range Generate(1) {
		require.GreaterOrEqual(t, len(p.Images), 3, "product %s gallery too small", p.ID)
		assert.Equal(t, p.Images[0], p.Image)
	}
}

func TestGenerate_PricedAndStocked(t *testing.T) {
	for _, p := range Generate(1) {
		assert.Greater(t, p.Price, 0.0, "product %s has no price", p.ID)
		assert.Greater(t, p.Stock, 0, "product %s has no stock", p.ID)
		assert.NotEmpty(t, p.Category)
		assert.NotEmpty(t, p.SubCategory)
	}
}

func TestCategories_Taxonomy(t *testing.T) {
	require.Len(t, Categories, 9)

	seen := make(map[string]bool)
	for _, c := range Categories {
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.SubCategories)
	}
}
