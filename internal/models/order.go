package models

import (
	"fmt"
	"time"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// ParseStatus validates a raw string against the status enumeration.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid order status: %s", s)
	}
}

// Next returns the single allowed forward transition for a status.
// A completed order has no next status.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	default:
		return "", false
	}
}

// BadgeColor maps a status to the dashboard badge variant.
func (s Status) BadgeColor() string {
	switch s {
	case StatusPending:
		return "default"
	case StatusPreparing:
		return "secondary"
	case StatusReady:
		return "outline"
	case StatusCompleted:
		return "destructive"
	default:
		return "default"
	}
}

// OrderItem is a snapshot of one line at submission time, decoupled
// from the live catalog.
type OrderItem struct {
	ID       uint    `json:"-" gorm:"primaryKey"`
	OrderID  string  `json:"-" gorm:"index;type:varchar(36)"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gte=1,lte=10"`
	Price    float64 `json:"price" validate:"gte=0"` // Price at the time of order
}

// Order represents a submitted table order.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount  float64     `json:"totalAmount"`
	Status       Status      `json:"status" gorm:"type:varchar(16)"`
	CustomerName string      `json:"customerName,omitempty"`
	TableNumber  string      `json:"tableNumber,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"-"`
}
