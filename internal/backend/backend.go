package backend

import (
	"context"

	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/user"
)

// Backend is the only path the storefront flows take to remote data.
type Backend interface {
	FetchProducts(ctx context.Context, filter product.Filter) ([]product.Product, error)
	// SaveProduct inserts when p.ID is empty and updates otherwise.
	SaveProduct(ctx context.Context, p *product.Product) (*product.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	FetchOrders(ctx context.Context, filter order.Filter) ([]order.Order, error)
	SaveOrder(ctx context.Context, o *order.Order) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status order.Status) error
	DeleteOrder(ctx context.Context, id string) error

	CurrentUser(ctx context.Context, token string) (*user.User, error)
	SignIn(ctx context.Context, email, password string) (*user.Session, error)
}
