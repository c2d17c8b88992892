package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(id string, qty int, price string) *InventoryItem {
	item := &InventoryItem{
		ID:       id,
		Name:     "Item " + id,
		Category: "Hardware",
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
	item.UpdateStatus()
	return item
}

func TestCartAddMergesLines(t *testing.T) {
	cart := &Cart{}
	item := testItem("P-001", 5, "10.00")

	require.NoError(t, cart.Add(item))
	require.NoError(t, cart.Add(item))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Qty)
	assert.Equal(t, 5, cart.Lines[0].MaxQty)
}

func TestCartAddHonorsSnapshot(t *testing.T) {
	cart := &Cart{}
	item := testItem("P-001", 2, "10.00")

	require.NoError(t, cart.Add(item))
	require.NoError(t, cart.Add(item))

	err := cart.Add(item)
	var stockErr *StockLimitError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "P-001", stockErr.ItemID)
	assert.Equal(t, 2, stockErr.Available)

	// The failed add leaves the line untouched.
	assert.Equal(t, 2, cart.Lines[0].Qty)
}

func TestCartSnapshotIgnoresLaterStockChanges(t *testing.T) {
	cart := &Cart{}
	item := testItem("P-001", 3, "10.00")
	require.NoError(t, cart.Add(item))

	// Stock moved after the line was created; MaxQty stays at 3.
	item.Quantity = 50
	require.NoError(t, cart.Increase("P-001"))
	require.NoError(t, cart.Increase("P-001"))
	assert.ErrorAs(t, cart.Increase("P-001"), new(*StockLimitError))
}

func TestCartDecreaseRemovesAtZero(t *testing.T) {
	cart := &Cart{}
	require.NoError(t, cart.Add(testItem("P-001", 5, "10.00")))

	require.NoError(t, cart.Decrease("P-001"))
	assert.Empty(t, cart.Lines)
}

func TestCartRemove(t *testing.T) {
	cart := &Cart{}
	require.NoError(t, cart.Add(testItem("P-001", 5, "10.00")))
	require.NoError(t, cart.Add(testItem("P-002", 5, "20.00")))

	cart.Remove("P-001")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "P-002", cart.Lines[0].ItemID)

	// Removing something absent is a no-op.
	cart.Remove("P-001")
	assert.Len(t, cart.Lines, 1)
}

func TestCartTotals(t *testing.T) {
	cart := &Cart{}
	first := testItem("P-001", 20, "100.00")
	second := testItem("P-002", 20, "50.00")

	require.NoError(t, cart.Add(first))
	require.NoError(t, cart.Add(first))
	require.NoError(t, cart.Add(second))

	totals := cart.Totals()
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, "250.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "30.00", totals.Tax.StringFixed(2))
	assert.Equal(t, "280.00", totals.Total.StringFixed(2))
}

func TestCartTotalsNoDrift(t *testing.T) {
	// 0.10 added a thousand times must be exactly 100.00 before tax.
	cart := &Cart{}
	item := testItem("P-001", 1000, "0.10")
	for i := 0; i < 1000; i++ {
		require.NoError(t, cart.Add(item))
	}

	totals := cart.Totals()
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("100.00")),
		"got %s", totals.Subtotal)
}

func TestCartClear(t *testing.T) {
	cart := &Cart{}
	require.NoError(t, cart.Add(testItem("P-001", 5, "10.00")))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Totals().Subtotal.IsZero())
}
