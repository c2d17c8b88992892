package service

import (
	"path/filepath"
	"testing"

	"hardtrack/internal/model"
	"hardtrack/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryStore(t *testing.T) store.InventoryStore {
	t.Helper()
	s, err := store.OpenInventoryStore(filepath.Join(t.TempDir(), "inventory_data.json"))
	require.NoError(t, err)
	return s
}

func addItem(t *testing.T, s store.InventoryStore, id string, qty int, price string) {
	t.Helper()
	require.NoError(t, s.AddItem(model.InventoryItem{
		ID:       id,
		Name:     "Item " + id,
		Category: "Hardware",
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}))
}

func TestCartServiceAddUnknownItem(t *testing.T) {
	carts := NewCartService(newInventoryStore(t))
	_, err := carts.AddItem("session-1", "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	inv := newInventoryStore(t)
	addItem(t, inv, "P-001", 5, "10.00")
	carts := NewCartService(inv)

	_, err := carts.AddItem("session-1", "P-001")
	require.NoError(t, err)

	cart, _ := carts.View("session-2")
	assert.Empty(t, cart.Lines)
}

func TestCartServiceClearNeedsConfirmation(t *testing.T) {
	inv := newInventoryStore(t)
	addItem(t, inv, "P-001", 5, "10.00")
	carts := NewCartService(inv)

	_, err := carts.AddItem("session-1", "P-001")
	require.NoError(t, err)

	// Declined confirmation leaves the cart alone.
	assert.ErrorIs(t, carts.Clear("session-1", Decline), ErrNotConfirmed)
	cart, _ := carts.View("session-1")
	assert.Len(t, cart.Lines, 1)

	yes := ConfirmerFunc(func(string) bool { return true })
	require.NoError(t, carts.Clear("session-1", yes))
	cart, _ = carts.View("session-1")
	assert.Empty(t, cart.Lines)
}

func TestCartServiceSnapshotMatchesView(t *testing.T) {
	inv := newInventoryStore(t)
	addItem(t, inv, "P-001", 20, "100.00")
	addItem(t, inv, "P-002", 20, "50.00")
	carts := NewCartService(inv)

	_, err := carts.AddItem("s", "P-001")
	require.NoError(t, err)
	_, err = carts.AddItem("s", "P-001")
	require.NoError(t, err)
	_, err = carts.AddItem("s", "P-002")
	require.NoError(t, err)

	_, viewTotals := carts.View("s")
	lines, snapTotals := carts.Snapshot("s")

	require.Len(t, lines, 2)
	assert.True(t, viewTotals.Total.Equal(snapTotals.Total))
	assert.Equal(t, "280.00", snapTotals.Total.StringFixed(2))
}
