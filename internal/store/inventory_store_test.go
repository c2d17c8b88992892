package store

import (
	"os"
	"path/filepath"
	"testing"

	"hardtrack/internal/model"
	"hardtrack/pkg/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventory(t *testing.T) (InventoryStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory_data.json")
	s, err := OpenInventoryStore(path)
	require.NoError(t, err)
	return s, path
}

func item(id string, qty int, price string) model.InventoryItem {
	return model.InventoryItem{
		ID:       id,
		Name:     "Item " + id,
		Category: "Hardware",
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
	}
}

func TestOpenInventoryStoreAbsentFile(t *testing.T) {
	s, _ := newInventory(t)
	assert.Empty(t, s.Items())
	assert.Empty(t, s.Suppliers())
}

func TestOpenInventoryStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := OpenInventoryStore(path)
	var perr *storage.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestAddItemDerivesStatusAndPersists(t *testing.T) {
	s, path := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 3, "99.99")))

	got, err := s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, model.StatusLowStock, got.Status)

	// Round-trip: a fresh store over the same file sees the same item.
	reopened, err := OpenInventoryStore(path)
	require.NoError(t, err)
	got, err = reopened.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("99.99")))
}

func TestAddItemRejectsDuplicateID(t *testing.T) {
	s, _ := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 3, "10.00")))

	err := s.AddItem(item("P-001", 9, "20.00"))
	require.ErrorIs(t, err, ErrDuplicate)

	// The original record is untouched.
	got, err := s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestUpdateItemRecomputesStatus(t *testing.T) {
	s, _ := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 50, "10.00")))

	updated := item("P-001", 0, "10.00")
	require.NoError(t, s.UpdateItem(updated))

	got, err := s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, model.StatusOutOfStock, got.Status)
}

func TestDeleteItem(t *testing.T) {
	s, _ := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 5, "10.00")))

	require.NoError(t, s.DeleteItem("P-001"))
	_, err := s.FindItem("P-001")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteItem("P-001"), ErrNotFound)
}

func TestSearchItems(t *testing.T) {
	s, _ := newInventory(t)
	mouse := item("P-001", 5, "10.00")
	mouse.Name = "Wireless Mouse"
	keyboard := item("P-002", 5, "25.00")
	keyboard.Name = "Keyboard"
	require.NoError(t, s.AddItem(mouse))
	require.NoError(t, s.AddItem(keyboard))

	assert.Len(t, s.SearchItems(""), 2)
	assert.Len(t, s.SearchItems("MOUSE"), 1)
	assert.Len(t, s.SearchItems("p-002"), 1)
	assert.Empty(t, s.SearchItems("printer"))
}

func TestAvailableItemsExcludesOutOfStock(t *testing.T) {
	s, _ := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 0, "10.00")))
	require.NoError(t, s.AddItem(item("P-002", 4, "10.00")))

	available := s.AvailableItems("")
	require.Len(t, available, 1)
	assert.Equal(t, "P-002", available[0].ID)
}

func TestSupplierCRUD(t *testing.T) {
	s, path := newInventory(t)
	supplier := model.Supplier{
		ID:     "S-001",
		Name:   "Acme Parts",
		Email:  "sales@acme.test",
		Status: model.SupplierActive,
	}
	require.NoError(t, s.AddSupplier(supplier))
	assert.ErrorIs(t, s.AddSupplier(supplier), ErrDuplicate)

	supplier.Status = model.SupplierInactive
	require.NoError(t, s.UpdateSupplier(supplier))

	reopened, err := OpenInventoryStore(path)
	require.NoError(t, err)
	got, err := reopened.FindSupplier("S-001")
	require.NoError(t, err)
	assert.Equal(t, model.SupplierInactive, got.Status)

	require.NoError(t, s.DeleteSupplier("S-001"))
	assert.ErrorIs(t, s.DeleteSupplier("S-001"), ErrNotFound)
}

func TestStageSaleValidatesCurrentStock(t *testing.T) {
	s, _ := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 2, "10.00")))

	// The line's snapshot said 5 were available, but only 2 remain now.
	lines := []model.CartLine{{ItemID: "P-001", Qty: 3, MaxQty: 5}}
	_, err := s.StageSale(lines)

	var stockErr *model.StockLimitError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)

	// Nothing changed.
	got, err := s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestStageSaleAppliesAfterCommit(t *testing.T) {
	s, path := newInventory(t)
	require.NoError(t, s.AddItem(item("P-001", 12, "10.00")))

	staged, err := s.StageSale([]model.CartLine{{ItemID: "P-001", Qty: 5, MaxQty: 12}})
	require.NoError(t, err)

	// Before commit+apply the in-memory view is unchanged.
	got, err := s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Quantity)

	marker := filepath.Join(filepath.Dir(path), "commit")
	require.NoError(t, storage.Commit(marker, staged.Update()))
	staged.Apply()

	got, err = s.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, model.StatusLowStock, got.Status)

	reopened, err := OpenInventoryStore(path)
	require.NoError(t, err)
	got, err = reopened.FindItem("P-001")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
}
