package handler

import (
	"errors"

	"hardtrack/internal/model"
	"hardtrack/internal/service"
	"hardtrack/internal/store"
	"hardtrack/pkg/storage"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain failures onto HTTP statuses. Persistence
// failures are the only 500s; everything else is the caller's problem.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *model.StockLimitError
	var persistErr *storage.PersistenceError

	status := 400
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = 404
	case errors.Is(err, store.ErrDuplicate):
		status = 409
	case errors.As(err, &stockErr):
		status = 409
	case errors.As(err, &persistErr):
		status = 500
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// sessionID returns the cart key for the authenticated operator,
// set by the auth middleware from the token id.
func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals("session_id").(string)
	return id
}

// confirmFromRequest builds the yes/no surface for destructive routes:
// the caller must send confirm=true explicitly, silence is "no".
func confirmFromRequest(c *fiber.Ctx) service.Confirmer {
	return service.ConfirmerFunc(func(string) bool {
		return c.QueryBool("confirm", false)
	})
}
