package repositories

import (
	"tableside/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll returns every order, newest first.
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	// UpdateStatus persists a single-field status change and returns the
	// updated record.
	UpdateStatus(id string, status models.Status) (*models.Order, error)
	// Orders are never deleted by the application.
}
