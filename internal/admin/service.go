package admin

import (
	"context"
	"fmt"

	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service backs the admin product and order screens. Every mutation returns
// the freshly re-fetched collection instead of patching a local copy.
type Service interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	CreateProduct(ctx context.Context, form product.Form) ([]product.Product, error)
	UpdateProduct(ctx context.Context, id string, form product.Form) ([]product.Product, error)
	DeleteProduct(ctx context.Context, id string, confirmed bool) ([]product.Product, error)

	ListOrders(ctx context.Context, status order.Status) ([]order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status order.Status) ([]order.Order, error)
	DeleteOrder(ctx context.Context, id string, confirmed bool) ([]order.Order, error)
}

type service struct {
	backend backend.Backend
}

func NewService(b backend.Backend) Service {
	return &service{backend: b}
}

// checkID rejects ids the uuid columns would refuse.
func checkID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context) ([]product.Product, error) {
	return s.backend.FetchProducts(ctx, product.Filter{})
}

func (s *service) CreateProduct(ctx context.Context, form product.Form) ([]product.Product, error) {
	p, err := form.Parse()
	if err != nil {
		return nil, err
	}

	saved, err := s.backend.SaveProduct(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.String("layer", "admin"),
		zap.String("product_id", saved.ID),
	)
	return s.ListProducts(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id string, form product.Form) ([]product.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	p, err := form.Parse()
	if err != nil {
		return nil, err
	}
	p.ID = id

	if _, err := s.backend.SaveProduct(ctx, p); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product updated",
		zap.String("layer", "admin"),
		zap.String("product_id", id),
	)
	return s.ListProducts(ctx)
}

func (s *service) DeleteProduct(ctx context.Context, id string, confirmed bool) ([]product.Product, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product deleted",
		zap.String("layer", "admin"),
		zap.String("product_id", id),
	)
	return s.ListProducts(ctx)
}

func (s *service) ListOrders(ctx context.Context, status order.Status) ([]order.Order, error) {
	if status != "" && !status.Valid() {
		return nil, order.ErrInvalidStatus
	}
	return s.backend.FetchOrders(ctx, order.Filter{Status: status})
}

// UpdateOrderStatus enforces the status graph. Setting the current status
// again skips the remote write.
func (s *service) UpdateOrderStatus(ctx context.Context, id string, status order.Status) ([]order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "admin"),
		zap.String("method", "UpdateOrderStatus"),
		zap.String("order_id", id),
	)

	if err := checkID(id); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, order.ErrInvalidStatus
	}

	found, err := s.backend.FetchOrders(ctx, order.Filter{ID: id})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, order.ErrOrderNotFound
	}

	current := found[0].Status
	if !current.CanTransitionTo(status) {
		log.Warn("rejected status change",
			zap.String("from", string(current)),
			zap.String("to", string(status)),
		)
		return nil, fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, current, status)
	}

	if current != status {
		if err := s.backend.UpdateOrderStatus(ctx, id, status); err != nil {
			return nil, err
		}
		log.Info("order status changed",
			zap.String("from", string(current)),
			zap.String("to", string(status)),
		)
	}
	return s.ListOrders(ctx, "")
}

func (s *service) DeleteOrder(ctx context.Context, id string, confirmed bool) ([]order.Order, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, ErrConfirmationRequired
	}

	if err := s.backend.DeleteOrder(ctx, id); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order deleted",
		zap.String("layer", "admin"),
		zap.String("order_id", id),
	)
	return s.ListOrders(ctx, "")
}
