package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"shopfront/api/internal/ids"
	"shopfront/api/internal/models"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrInvalidStatus = errors.New("invalid status")
)

// OrderStore is the slice of the order repository the service needs.
type OrderStore interface {
	Create(ctx context.Context, order models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderService struct {
	orders OrderStore
	log    zerolog.Logger
}

func NewOrderService(orders OrderStore, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Address      string
	Items        []map[string]any
	Total        float64
}

// Create validates the intake payload and stores the order as Pending.
// Nothing is persisted when any field is rejected.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (models.Order, error) {
	if err := validateOrder(input); err != nil {
		return models.Order{}, err
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:           ids.New(),
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Address:      input.Address,
		Items:        input.Items,
		Total:        input.Total,
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return models.Order{}, err
	}

	s.log.Info().Str("order_id", order.ID).Float64("total", order.Total).Msg("order created")
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus admits only the four canonical statuses. The stored row is
// untouched when the status is rejected. The order is looked up first: an
// unknown id is reported before the status value is judged.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (models.Order, error) {
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return models.Order{}, err
	}

	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	return s.orders.UpdateStatus(ctx, id, parsed)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

func validateOrder(input CreateOrderInput) error {
	if input.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if input.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if input.Address == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}
	if math.IsNaN(input.Total) || math.IsInf(input.Total, 0) || input.Total < 0 {
		return fmt.Errorf("%w: total must be a non-negative number", ErrValidation)
	}
	return nil
}
