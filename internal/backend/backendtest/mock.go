// Package backendtest provides a testify mock of backend.Backend.
package backendtest

import (
	"context"

	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"
	"dalarosa-be/internal/user"

	"github.com/stretchr/testify/mock"
)

// MockBackend also accepts a func(ctx, in) out as the first return value of
// SaveProduct and SaveOrder to echo the input back.
type MockBackend struct {
	mock.Mock
}

var _ backend.Backend = (*MockBackend)(nil)

func (m *MockBackend) FetchProducts(ctx context.Context, filter product.Filter) ([]product.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockBackend) SaveProduct(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *product.Product) *product.Product); ok {
		return fn(ctx, p), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackend) FetchOrders(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockBackend) SaveOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if fn, ok := args.Get(0).(func(context.Context, *order.Order) *order.Order); ok {
		return fn(ctx, o), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockBackend) UpdateOrderStatus(ctx context.Context, id string, status order.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBackend) DeleteOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackend) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockBackend) SignIn(ctx context.Context, email, password string) (*user.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Session), args.Error(1)
}
