package model

import "github.com/shopspring/decimal"

type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
)

// LowStockThreshold is the largest quantity still reported as Low Stock.
const LowStockThreshold = 10

type InventoryItem struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	Status   StockStatus     `json:"status"`
}

// DeriveStatus classifies a quantity into a stock status.
func DeriveStatus(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= LowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// UpdateStatus recomputes the derived status. Must be called after every
// quantity change; Status is never authoritative on its own.
func (i *InventoryItem) UpdateStatus() {
	i.Status = DeriveStatus(i.Quantity)
}

// Categories offered by the admin product form.
var Categories = []string{"Electronics", "Accessories", "Hardware"}
