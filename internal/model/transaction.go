package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at checkout.
const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card"
	PaymentOnline = "Online Banking"
)

var PaymentMethods = []string{PaymentCash, PaymentCard, PaymentOnline}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// TransactionItem is the snapshot of one sold cart line.
type TransactionItem struct {
	ItemID string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Qty    int             `json:"qty"`
}

// Transaction is a completed sale. It is immutable once written to the
// ledger; nothing mutates or deletes it afterwards.
type Transaction struct {
	ID            string            `json:"id"`
	Timestamp     string            `json:"timestamp"`
	Items         []TransactionItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Tax           decimal.Decimal   `json:"tax"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod string            `json:"payment_method"`
}

// NewTransactionID derives a ledger id from the wall clock.
func NewTransactionID(t time.Time) string {
	return t.Format("20060102150405")
}

// TimestampFormat is the human-readable form stored on transactions.
const TimestampFormat = "2006-01-02 15:04:05"
