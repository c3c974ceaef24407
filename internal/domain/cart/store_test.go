package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id, name string, price float64) Item {
	return Item{
		ID:    id,
		Name:  name,
		Price: price,
		Image: name + ".jpg",
	}
}

func TestAddItemMergesQuantityByID(t *testing.T) {
	store := NewStore()

	store.AddItem(testItem("1", "iPhone 13", 999.99), 1)
	store.AddItem(testItem("1", "iPhone 13", 999.99), 2)
	store.AddItem(testItem("2", "MacBook Air", 1199.99), 1)
	store.AddItem(testItem("1", "iPhone 13", 999.99), 1)

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	store := NewStore()

	store.AddItem(testItem("1", "iPhone 13", 999.99), 0)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	store := NewStore()
	store.AddItem(testItem("1", "iPhone 13", 999.99), 3)

	store.UpdateQuantity("1", 0)
	assert.Equal(t, 1, store.Items()[0].Quantity)

	store.UpdateQuantity("1", -5)
	assert.Equal(t, 1, store.Items()[0].Quantity)

	store.UpdateQuantity("1", 7)
	assert.Equal(t, 7, store.Items()[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	store := NewStore()
	store.AddItem(testItem("1", "iPhone 13", 999.99), 2)

	store.UpdateQuantity("missing", 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveThenAddStartsFresh(t *testing.T) {
	store := NewStore()
	store.AddItem(testItem("1", "iPhone 13", 999.99), 5)

	store.RemoveItem("1")
	assert.Zero(t, store.Len())

	store.AddItem(testItem("1", "iPhone 13", 999.99), 2)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	store := NewStore()
	store.AddItem(testItem("1", "iPhone 13", 999.99), 1)

	store.RemoveItem("missing")
	assert.Equal(t, 1, store.Len())
}

func TestTotalsRecomputedOnEveryMutation(t *testing.T) {
	store := NewStore()

	store.AddItem(testItem("1", "iPhone 13", 999.99), 2)
	store.AddItem(testItem("2", "AirPods Pro", 299.99), 1)

	totals := store.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.InDelta(t, 2299.97, totals.Total, 0.001)

	store.RemoveItem("2")
	assert.InDelta(t, 1999.98, store.Total(), 0.001)

	store.Clear()
	assert.Zero(t, store.Total())
	assert.Zero(t, store.Totals().TotalQuantity)
	assert.True(t, store.IsEmpty())
}

func TestItemsReturnsSnapshotCopy(t *testing.T) {
	store := NewStore()
	store.AddItem(testItem("1", "iPhone 13", 999.99), 1)

	items := store.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Items()[0].Quantity)
}
