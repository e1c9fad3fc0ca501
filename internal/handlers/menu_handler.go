package handlers

import (
	"tableside/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

// MenuHandler serves the read-only menu catalog.
type MenuHandler struct {
	catalog *catalog.Catalog
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{
		catalog: cat,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/", h.HandleGetMenu)
	menuRoutes.Get("/search", h.HandleSearchMenu)
}

// HandleGetMenu returns the full menu.
func (h *MenuHandler) HandleGetMenu(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Sections())
}

// HandleSearchMenu filters the menu by a query string and an optional
// section id. An empty filtered result is a 200 with an empty array.
func (h *MenuHandler) HandleSearchMenu(c *fiber.Ctx) error {
	query := c.Query("q")
	sectionID := c.Query("section")
	return c.JSON(h.catalog.Filter(query, sectionID))
}
