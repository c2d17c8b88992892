package service

import (
	"fmt"
	"sort"

	"hardtrack/internal/model"
	"hardtrack/internal/store"

	"github.com/shopspring/decimal"
)

// ReportService derives read-only views over inventory and the ledger
// for the admin dashboard. Nothing here mutates state.
type ReportService interface {
	Stats() DashboardStats
	Report(reportType string) (*Report, error)
	Transactions() []model.Transaction
}

type DashboardStats struct {
	TotalProducts int `json:"total_products"`
	InStock       int `json:"in_stock"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
	Suppliers     int `json:"suppliers"`
}

type CategoryValue struct {
	Category string          `json:"category"`
	Units    int             `json:"units"`
	Value    decimal.Decimal `json:"value"`
}

type Report struct {
	Type       string                `json:"type"`
	Items      []model.InventoryItem `json:"items,omitempty"`
	TotalUnits int                   `json:"total_units,omitempty"`
	TotalValue decimal.Decimal       `json:"total_value,omitempty"`
	ByCategory []CategoryValue       `json:"by_category,omitempty"`
}

const (
	ReportInventory  = "inventory"
	ReportLowStock   = "low-stock"
	ReportOutOfStock = "out-of-stock"
	ReportValue      = "value"
)

type reportService struct {
	inventory store.InventoryStore
	ledger    store.LedgerStore
}

func NewReportService(inventory store.InventoryStore, ledger store.LedgerStore) ReportService {
	return &reportService{inventory: inventory, ledger: ledger}
}

func (s *reportService) Stats() DashboardStats {
	stats := DashboardStats{Suppliers: len(s.inventory.Suppliers())}
	for _, item := range s.inventory.Items() {
		stats.TotalProducts++
		switch item.Status {
		case model.StatusInStock:
			stats.InStock++
		case model.StatusLowStock:
			stats.LowStock++
		case model.StatusOutOfStock:
			stats.OutOfStock++
		}
	}
	return stats
}

func (s *reportService) Report(reportType string) (*Report, error) {
	items := s.inventory.Items()

	switch reportType {
	case ReportInventory:
		return &Report{Type: reportType, Items: items}, nil

	case ReportLowStock:
		return &Report{Type: reportType, Items: filterByStatus(items, model.StatusLowStock)}, nil

	case ReportOutOfStock:
		return &Report{Type: reportType, Items: filterByStatus(items, model.StatusOutOfStock)}, nil

	case ReportValue:
		return valueReport(items), nil

	default:
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}
}

func (s *reportService) Transactions() []model.Transaction {
	return s.ledger.All()
}

func filterByStatus(items []model.InventoryItem, status model.StockStatus) []model.InventoryItem {
	out := []model.InventoryItem{}
	for _, item := range items {
		if item.Status == status {
			out = append(out, item)
		}
	}
	return out
}

func valueReport(items []model.InventoryItem) *Report {
	report := &Report{Type: ReportValue, TotalValue: decimal.Zero}
	perCategory := map[string]*CategoryValue{}

	for _, item := range items {
		value := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		report.TotalUnits += item.Quantity
		report.TotalValue = report.TotalValue.Add(value)

		cv, ok := perCategory[item.Category]
		if !ok {
			cv = &CategoryValue{Category: item.Category, Value: decimal.Zero}
			perCategory[item.Category] = cv
		}
		cv.Units += item.Quantity
		cv.Value = cv.Value.Add(value)
	}

	for _, cv := range perCategory {
		report.ByCategory = append(report.ByCategory, *cv)
	}
	sort.Slice(report.ByCategory, func(i, j int) bool {
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})
	return report
}
