package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopfront/api/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists the order exactly as assembled by the service, timestamps
// included, so the echoed struct matches the stored row.
func (r *OrderRepository) Create(ctx context.Context, order models.Order) error {
	const query = `
		INSERT INTO orders (id, customer_name, phone, address, items, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		order.ID,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.Items,
		order.Total,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (models.Order, error) {
	const query = `
		SELECT id, customer_name, phone, address, items, total, status, created_at, updated_at
		FROM orders WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	var order models.Order
	if err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&order.Items,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

// List returns every order, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	const query = `
		SELECT id, customer_name, phone, address, items, total, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.Phone,
			&order.Address,
			&order.Items,
			&order.Total,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus replaces the status and returns the updated row. Status
// validity is enforced by the caller; this only touches the status column.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	const query = `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, customer_name, phone, address, items, total, status, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query, id, status)
	var order models.Order
	if err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Phone,
		&order.Address,
		&order.Items,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM orders WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// CountByStatus feeds the daily report job.
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[models.OrderStatus]int, error) {
	const query = `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.OrderStatus]int)
	for rows.Next() {
		var status models.OrderStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
