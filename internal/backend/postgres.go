package backend

import (
	"context"

	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/user"

	"go.uber.org/zap"
)

type postgres struct {
	products product.Repository
	orders   order.Repository
	users    user.Service
}

// NewPostgres builds the Backend over the SQL repositories.
func NewPostgres(products product.Repository, orders order.Repository, users user.Service) Backend {
	return &postgres{products: products, orders: orders, users: users}
}

func (b *postgres) FetchProducts(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	list, err := b.products.List(ctx, filter)
	return list, remote(err)
}

func (b *postgres) SaveProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		logger.FromCtx(ctx).Warn("rejected product at backend boundary",
			zap.String("product_id", p.ID),
			zap.Error(err),
		)
		return nil, err
	}

	var (
		out *product.Product
		err error
	)
	if p.ID == "" {
		out, err = b.products.Create(ctx, p)
	} else {
		out, err = b.products.Update(ctx, p)
	}
	return out, remote(err, product.ErrProductNotFound)
}

func (b *postgres) DeleteProduct(ctx context.Context, id string) error {
	return remote(b.products.Delete(ctx, id), product.ErrProductNotFound)
}

func (b *postgres) FetchOrders(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	list, err := b.orders.List(ctx, filter)
	return list, remote(err)
}

func (b *postgres) SaveOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		logger.FromCtx(ctx).Warn("rejected order at backend boundary", zap.Error(err))
		return nil, err
	}

	out, err := b.orders.Create(ctx, o)
	return out, remote(err)
}

func (b *postgres) UpdateOrderStatus(ctx context.Context, id string, status order.Status) error {
	if !status.Valid() {
		return order.ErrInvalidStatus
	}
	return remote(b.orders.UpdateStatus(ctx, id, status), order.ErrOrderNotFound)
}

func (b *postgres) DeleteOrder(ctx context.Context, id string) error {
	return remote(b.orders.Delete(ctx, id), order.ErrOrderNotFound)
}

func (b *postgres) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	u, err := b.users.CurrentUser(ctx, token)
	return u, remote(err, user.ErrInvalidToken, user.ErrNotAdmin, user.ErrMissingSecret)
}

func (b *postgres) SignIn(ctx context.Context, email, password string) (*user.Session, error) {
	sess, err := b.users.SignIn(ctx, email, password)
	return sess, remote(err, user.ErrInvalidCredentials)
}
