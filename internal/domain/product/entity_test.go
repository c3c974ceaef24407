package product

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountedPrice(t *testing.T) {
	p := Product{Price: 899.99, DiscountPercentage: 5}
	assert.InDelta(t, 854.99, p.DiscountedPrice(), 0.01)

	p.DiscountPercentage = 0
	assert.Equal(t, 899.99, p.DiscountedPrice())
}

func TestIsInStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).IsInStock())
	assert.False(t, (&Product{Stock: 0}).IsInStock())
}

func TestSearchTermPrefersSearchOverLegacyAlias(t *testing.T) {
	f := Filter{Search: "iphone", SearchQuery: "ipad"}
	assert.Equal(t, "iphone", f.SearchTerm())

	f = Filter{SearchQuery: "ipad"}
	assert.Equal(t, "ipad", f.SearchTerm())

	assert.Empty(t, (&Filter{}).SearchTerm())
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	f := Filter{Page: 0, Limit: 0}
	f.Normalize(12)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 12, f.Limit)

	f = Filter{Page: 3, Limit: 24}
	f.Normalize(12)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 24, f.Limit)
}

func TestPageHasMore(t *testing.T) {
	page := Page{Total: 25}

	assert.True(t, page.HasMore(1, 12))
	assert.True(t, page.HasMore(2, 12))
	assert.False(t, page.HasMore(3, 12))

	empty := Page{Total: 0}
	assert.False(t, empty.HasMore(1, 12))
}

func TestProductJSONShape(t *testing.T) {
	p := Product{
		ID:                 "abc",
		Name:               "iPhone 13 Pro",
		Price:              899.99,
		Category:           "smartphones",
		Images:             StringList{"a.jpg"},
		Specifications:     StringMap{"Chip": "A15 Bionic"},
		IsActive:           true,
		DiscountPercentage: 5,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "abc", decoded["id"])
	assert.Equal(t, true, decoded["isActive"])
	assert.Equal(t, 5.0, decoded["discountPercentage"])
	assert.NotContains(t, decoded, "DeletedAt")
}

func TestStringListScanValue(t *testing.T) {
	var list StringList
	require.NoError(t, list.Scan([]byte(`["a.jpg","b.jpg"]`)))
	assert.Equal(t, StringList{"a.jpg", "b.jpg"}, list)

	value, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(value.([]byte)))
}

func TestStringMapScanValue(t *testing.T) {
	var m StringMap
	require.NoError(t, m.Scan(`{"Chip":"M2"}`))
	assert.Equal(t, StringMap{"Chip": "M2"}, m)

	require.NoError(t, m.Scan(nil))
	assert.Empty(t, m)

	assert.Error(t, m.Scan(42))
}
