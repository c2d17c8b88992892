package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRate is the single fixed sales tax applied at checkout (12%).
var TaxRate = decimal.NewFromFloat(0.12)

// StockLimitError reports a requested quantity that exceeds what was
// available for the item.
type StockLimitError struct {
	ItemID    string
	Available int
}

func (e *StockLimitError) Error() string {
	return fmt.Sprintf("only %d of item %s available", e.Available, e.ItemID)
}

// CartLine is a pending request to purchase some quantity of one item.
// MaxQty is a snapshot of the item's available quantity taken when the
// line was created; it does not track later stock changes.
type CartLine struct {
	ItemID string          `json:"item_id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Qty    int             `json:"qty"`
	MaxQty int             `json:"max_qty"`
}

// Cart is an ordered staging area of purchase lines, one line per
// distinct item id. It is session-local and never persisted.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

type CartTotals struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}

// Add puts one unit of the item into the cart. An existing line is
// incremented while it stays under its availability snapshot; a new line
// captures the item's current quantity as that snapshot.
func (c *Cart) Add(item *InventoryItem) error {
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			if c.Lines[i].Qty >= c.Lines[i].MaxQty {
				return &StockLimitError{ItemID: item.ID, Available: c.Lines[i].MaxQty}
			}
			c.Lines[i].Qty++
			return nil
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID: item.ID,
		Name:   item.Name,
		Price:  item.Price,
		Qty:    1,
		MaxQty: item.Quantity,
	})
	return nil
}

func (c *Cart) find(itemID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Increase adds one unit to an existing line, bounded by its snapshot.
func (c *Cart) Increase(itemID string) error {
	line := c.find(itemID)
	if line == nil {
		return fmt.Errorf("item %s is not in the cart", itemID)
	}
	if line.Qty >= line.MaxQty {
		return &StockLimitError{ItemID: itemID, Available: line.MaxQty}
	}
	line.Qty++
	return nil
}

// Decrease removes one unit; a line that would reach zero is dropped.
func (c *Cart) Decrease(itemID string) error {
	line := c.find(itemID)
	if line == nil {
		return fmt.Errorf("item %s is not in the cart", itemID)
	}
	if line.Qty <= 1 {
		c.Remove(itemID)
		return nil
	}
	line.Qty--
	return nil
}

// Remove drops the line unconditionally. Removing an absent line is a no-op.
func (c *Cart) Remove(itemID string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// Clear empties the cart. Callers are expected to have confirmed first.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Totals computes subtotal, tax and total over the current lines using
// decimal arithmetic so repeated additions cannot drift.
func (c *Cart) Totals() CartTotals {
	subtotal := decimal.Zero
	count := 0
	for _, line := range c.Lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
		count += line.Qty
	}
	tax := subtotal.Mul(TaxRate)
	return CartTotals{
		ItemCount: count,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal.Add(tax),
	}
}
