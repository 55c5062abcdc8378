package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "estoque/internal/log"
	"estoque/internal/services"
)

type APIHandler struct {
	Ledger *services.Ledger
}

// GET /api/v1/products
func (h *APIHandler) Products(c *fiber.Ctx) error {
	products, err := h.Ledger.ListAvailable(c.UserContext())
	if err != nil {
		applog.Error(c, "api.products.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not load products",
		})
	}
	return c.JSON(fiber.Map{"products": products})
}

// GET /api/v1/summary
func (h *APIHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.Ledger.ComputeSummary(c.UserContext())
	if err != nil {
		applog.Error(c, "api.summary.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not compute summary",
		})
	}
	return c.JSON(sum)
}
