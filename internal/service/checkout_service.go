package service

import (
	"errors"
	"fmt"
	"time"

	"hardtrack/internal/model"
	"hardtrack/internal/store"
	"hardtrack/internal/ws"
	"hardtrack/pkg/storage"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidPayment = errors.New("unknown payment method")
)

type CheckoutService interface {
	// Checkout converts the session's cart into a durable transaction:
	// ledger append and stock decrement commit together or not at all.
	Checkout(sessionID, paymentMethod string) (*model.Transaction, error)
}

type checkoutService struct {
	carts      CartService
	inventory  store.InventoryStore
	ledger     store.LedgerStore
	markerPath string
	hub        *ws.Hub
	now        func() time.Time
}

func NewCheckoutService(carts CartService, inventory store.InventoryStore, ledger store.LedgerStore, markerPath string, hub *ws.Hub) CheckoutService {
	return &checkoutService{
		carts:      carts,
		inventory:  inventory,
		ledger:     ledger,
		markerPath: markerPath,
		hub:        hub,
		now:        time.Now,
	}
}

func (s *checkoutService) Checkout(sessionID, paymentMethod string) (*model.Transaction, error) {
	if !model.ValidPaymentMethod(paymentMethod) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayment, paymentMethod)
	}

	// One totals computation serves both the operator-facing amount and
	// the persisted transaction; they cannot disagree.
	lines, totals := s.carts.Snapshot(sessionID)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now()
	tx := model.Transaction{
		ID:            model.NewTransactionID(now),
		Timestamp:     now.Format(model.TimestampFormat),
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: paymentMethod,
	}
	for _, line := range lines {
		tx.Items = append(tx.Items, model.TransactionItem{
			ItemID: line.ItemID,
			Name:   line.Name,
			Price:  line.Price,
			Qty:    line.Qty,
		})
	}

	// StageSale re-checks every line against current stock, not the
	// cart's add-time snapshot.
	stagedInventory, err := s.inventory.StageSale(lines)
	if err != nil {
		return nil, err
	}
	stagedLedger, err := s.ledger.StageAppend(tx)
	if err != nil {
		return nil, err
	}

	if err := storage.Commit(s.markerPath, stagedInventory.Update(), stagedLedger.Update()); err != nil {
		return nil, err
	}
	stagedInventory.Apply()
	stagedLedger.Apply()
	s.carts.Reset(sessionID)

	go s.publishSale(&tx, lines)
	return &tx, nil
}

func (s *checkoutService) publishSale(tx *model.Transaction, lines []model.CartLine) {
	s.hub.Publish(ws.EventSale, map[string]any{
		"transaction_id": tx.ID,
		"total":          tx.Total,
		"payment_method": tx.PaymentMethod,
	})
	for _, line := range lines {
		item, err := s.inventory.FindItem(line.ItemID)
		if err != nil {
			continue
		}
		s.hub.Publish(ws.EventStockUpdate, map[string]any{
			"action": "sale",
			"item":   item,
		})
		if item.Status != model.StatusInStock {
			s.hub.Publish(ws.EventLowStock, map[string]any{
				"item_id":  item.ID,
				"name":     item.Name,
				"quantity": item.Quantity,
				"status":   item.Status,
			})
		}
	}
}
