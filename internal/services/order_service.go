package services

import (
	"fmt"
	"log"

	"tableside/internal/models"
	"tableside/internal/repositories"
)

// EventPublisher publishes order lifecycle events for downstream
// consumers (kitchen displays, notification workers).
type EventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
	PublishOrderStatusChanged(event map[string]interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher // optional; nil skips event publication
	// strictFlow rejects status updates that are not the single forward
	// transition. Off by default: the store historically accepted any
	// valid status so kitchen staff can manually override.
	strictFlow bool
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, strictFlow bool) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		publisher:  publisher,
		strictFlow: strictFlow,
	}
}

// GetAllOrders retrieves all orders, newest first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder validates and persists a submitted order. The item
// snapshot is stored as-is; the total is accepted from the submission
// and recomputed from the snapshot when absent. Status always starts
// at pending.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	if len(orderRequest.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var computedTotal float64
	for _, item := range orderRequest.Items {
		if item.Quantity < 1 || item.Quantity > 10 {
			return nil, fmt.Errorf("item %q quantity %d out of range [1,10]", item.Name, item.Quantity)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("item %q has negative price", item.Name)
		}
		computedTotal += item.Price * float64(item.Quantity)
	}

	totalAmount := orderRequest.TotalAmount
	if totalAmount <= 0 {
		totalAmount = computedTotal
	}

	newOrder := &models.Order{
		Items:        orderRequest.Items,
		TotalAmount:  totalAmount,
		Status:       models.StatusPending,
		CustomerName: orderRequest.CustomerName,
		TableNumber:  orderRequest.TableNumber,
		Notes:        orderRequest.Notes,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID":     newOrder.ID,
			"tableNumber": newOrder.TableNumber,
			"status":      string(newOrder.Status),
			"total":       newOrder.TotalAmount,
		}
		if err := s.publisher.PublishOrderCreated(event); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", newOrder.ID, err)
		}
	}

	return newOrder, nil
}

// UpdateOrderStatus validates the requested status and persists the
// single-field change, returning the updated order.
func (s *OrderService) UpdateOrderStatus(id string, status models.Status) (*models.Order, error) {
	if _, err := models.ParseStatus(string(status)); err != nil {
		return nil, err
	}

	if s.strictFlow {
		current, err := s.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		next, ok := current.Status.Next()
		if !ok || next != status {
			return nil, fmt.Errorf("invalid status transition %s -> %s", current.Status, status)
		}
	}

	updated, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"orderID": updated.ID,
			"status":  string(updated.Status),
		}
		if err := s.publisher.PublishOrderStatusChanged(event); err != nil {
			log.Printf("Warning: failed to publish status change event for order %s: %v", updated.ID, err)
		}
	}

	return updated, nil
}
