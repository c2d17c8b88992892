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

func TestLedgerAbsentFileIsEmpty(t *testing.T) {
	s, err := OpenLedgerStore(filepath.Join(t.TempDir(), "transactions.json"))
	require.NoError(t, err)
	assert.Empty(t, s.All())
}

func TestLedgerCorruptFileIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte("not a ledger"), 0o644))

	_, err := OpenLedgerStore(path)
	var perr *storage.PersistenceError
	assert.ErrorAs(t, err, &perr)
}

func TestLedgerStagedAppendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	s, err := OpenLedgerStore(path)
	require.NoError(t, err)

	tx := model.Transaction{
		ID:            "20250101120000",
		Timestamp:     "2025-01-01 12:00:00",
		Subtotal:      decimal.RequireFromString("250.00"),
		Tax:           decimal.RequireFromString("30.00"),
		Total:         decimal.RequireFromString("280.00"),
		PaymentMethod: model.PaymentCash,
		Items: []model.TransactionItem{
			{ItemID: "P-001", Name: "Mouse", Price: decimal.RequireFromString("100.00"), Qty: 2},
		},
	}

	staged, err := s.StageAppend(tx)
	require.NoError(t, err)
	assert.Empty(t, s.All(), "append must not be visible before apply")

	require.NoError(t, storage.Commit(filepath.Join(dir, "commit"), staged.Update()))
	staged.Apply()

	require.Len(t, s.All(), 1)

	reopened, err := OpenLedgerStore(path)
	require.NoError(t, err)
	all := reopened.All()
	require.Len(t, all, 1)
	assert.Equal(t, "20250101120000", all[0].ID)
	assert.True(t, all[0].Total.Equal(tx.Total))
}
