package handlers

import (
	"fmt"
	"log"
	"strings"

	"tableside/internal/models"
	"tableside/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	// authGuard protects the kitchen-only status update route.
	authGuard fiber.Handler
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, authGuard fiber.Handler) *OrderHandler {
	return &OrderHandler{
		service:   service,
		validate:  validator.New(),
		authGuard: authGuard,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	if h.authGuard != nil {
		orderRoutes.Patch("/:id/status", h.authGuard, h.HandleUpdateOrderStatus)
	} else {
		orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
	}
}

// CreateOrderRequest is the submission payload: a snapshot of cart
// lines frozen at submit time, decoupled from the live catalog.
type CreateOrderRequest struct {
	Items        []models.OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalAmount  float64            `json:"totalAmount" validate:"gte=0"`
	CustomerName string             `json:"customerName" validate:"omitempty,max=100"`
	TableNumber  string             `json:"tableNumber" validate:"omitempty,max=20"`
	Notes        string             `json:"notes" validate:"omitempty,max=500"`
}

// HandleGetOrders retrieves all orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates a new order from a cart snapshot.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Field(), e.Tag()))
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": strings.Join(errorMessages, "; "),
		})
	}

	createdOrder, err := h.service.CreateOrder(models.Order{
		Items:        req.Items,
		TotalAmount:  req.TotalAmount,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Notes:        req.Notes,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateOrderStatus updates the status of an existing order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body for status update",
		})
	}

	status, err := models.ParseStatus(updateData.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	updated, err := h.service.UpdateOrderStatus(orderID, status)
	if err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(updated)
}
