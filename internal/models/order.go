package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipping  OrderStatus = "Shipping"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusRejected  OrderStatus = "Rejected"
)

// ParseOrderStatus is the single admission gate for order statuses. The
// transition graph is open: any canonical status may replace any other.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipping, OrderStatusCompleted, OrderStatusRejected:
		return OrderStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q", s)
	}
}

// Order is an anonymous customer order. Items is a free-form list of line
// entries persisted as JSONB.
type Order struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string
	Items        []map[string]any
	Total        float64
	Status       OrderStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
