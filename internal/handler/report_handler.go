package handler

import (
	"hardtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetStats returns the dashboard counters.
// GET /api/v1/reports/stats
func (h *ReportHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// GetReport renders one of the named reports.
// GET /api/v1/reports/:type
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.service.Report(c.Params("type"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// GetTransactions lists the ledger, newest last.
// GET /api/v1/transactions
func (h *ReportHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.service.Transactions())
}
