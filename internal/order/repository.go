package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dalarosa-be/internal/logger"

	"go.uber.org/zap"
)

const orderColumns = `id, customer_name, customer_email, customer_phone, delivery_address,
	items, total_amount, status, created_at`

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Order, error)
	Create(ctx context.Context, o *Order) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
	)

	var (
		where []string
		args  []any
	)
	if filter.ID != "" {
		args = append(args, filter.ID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListOrders, err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.CustomerPhone,
			&o.DeliveryAddress,
			&o.Items,
			&o.TotalAmount,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrFailedListOrders, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListOrders, err)
	}

	return orders, nil
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(o.Items)),
	)

	query := `
	INSERT INTO orders (
		customer_name, customer_email, customer_phone, delivery_address,
		items, total_amount, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at
	`

	out := *o
	err := r.db.QueryRowContext(ctx, query,
		o.CustomerName,
		o.CustomerEmail,
		o.CustomerPhone,
		o.DeliveryAddress,
		o.Items,
		o.TotalAmount,
		o.Status,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedCreateOrder, err)
	}

	log.Info("order created",
		zap.String("order_id", out.ID),
		zap.String("total", out.TotalAmount.StringFixed(2)),
	)
	return &out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateOrderStatus"),
		zap.String("order_id", id),
		zap.String("status", string(status)),
	)

	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		log.Error("failed to update status", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrFailedUpdateStatus, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedUpdateStatus, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	log.Info("order status updated")
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteOrder"),
		zap.String("order_id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrFailedDeleteOrder, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedDeleteOrder, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	log.Info("order deleted")
	return nil
}
