package admin

import (
	"context"
	"errors"
	"testing"

	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/backend/backendtest"
	"dalarosa-be/internal/order"
	"dalarosa-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	productID      = "3b2f0c9e-7d4a-4e51-9c1f-2a6d8e4b0a11"
	orderID        = "9e4c1a7b-2f3d-4b8e-a6c5-1d0f7e3b2a22"
	missingOrderID = "9e4c1a7b-2f3d-4b8e-a6c5-1d0f7e3b2a99"
)

func validForm() product.Form {
	return product.Form{Name: "Feijão", Price: "8.90", Stock: "12", Category: "Alimentos", Unit: "Pacote"}
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("SavesThenRefetches", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		listed := []product.Product{{ID: productID, Name: "Feijão"}}
		mb.On("SaveProduct", ctx, mock.MatchedBy(func(p *product.Product) bool {
			return p.ID == "" && p.Name == "Feijão" && p.Stock == 12
		})).Return(&product.Product{ID: productID}, nil).Once()
		mb.On("FetchProducts", ctx, product.Filter{}).Return(listed, nil).Once()

		got, err := svc.CreateProduct(ctx, validForm())
		require.NoError(t, err)
		assert.Equal(t, listed, got)
		mb.AssertExpectations(t)
	})

	t.Run("InvalidPriceNeverCallsBackend", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		form := validForm()
		form.Price = "dez reais"
		_, err := svc.CreateProduct(ctx, form)
		assert.ErrorIs(t, err, product.ErrInvalidPrice)
		mb.AssertNotCalled(t, "SaveProduct", mock.Anything, mock.Anything)
	})

	t.Run("RemoteFailureSkipsRefetch", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("SaveProduct", ctx, mock.Anything).Return(nil, backend.ErrRemote)

		_, err := svc.CreateProduct(ctx, validForm())
		assert.ErrorIs(t, err, backend.ErrRemote)
		mb.AssertNotCalled(t, "FetchProducts", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsID", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("SaveProduct", ctx, mock.MatchedBy(func(p *product.Product) bool { return p.ID == productID })).
			Return(&product.Product{ID: productID}, nil)
		mb.On("FetchProducts", ctx, product.Filter{}).Return([]product.Product{}, nil)

		_, err := svc.UpdateProduct(ctx, productID, validForm())
		require.NoError(t, err)
		mb.AssertExpectations(t)
	})

	t.Run("MissingID", func(t *testing.T) {
		svc := NewService(new(backendtest.MockBackend))
		_, err := svc.UpdateProduct(ctx, "", validForm())
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresConfirmation", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		_, err := svc.DeleteProduct(ctx, productID, false)
		assert.ErrorIs(t, err, ErrConfirmationRequired)
		mb.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("Confirmed", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("DeleteProduct", ctx, productID).Return(nil)
		mb.On("FetchProducts", ctx, product.Filter{}).Return([]product.Product{}, nil)

		got, err := svc.DeleteProduct(ctx, productID, true)
		require.NoError(t, err)
		assert.Empty(t, got)
		mb.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("DeleteProduct", ctx, productID).Return(product.ErrProductNotFound)

		_, err := svc.DeleteProduct(ctx, productID, true)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()
	all := []order.Order{{ID: orderID}, {ID: "o2"}}

	t.Run("AllowedTransition", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("FetchOrders", ctx, order.Filter{ID: orderID}).
			Return([]order.Order{{ID: orderID, Status: order.StatusPending}}, nil)
		mb.On("UpdateOrderStatus", ctx, orderID, order.StatusInProgress).Return(nil)
		mb.On("FetchOrders", ctx, order.Filter{}).Return(all, nil)

		got, err := svc.UpdateOrderStatus(ctx, orderID, order.StatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, all, got)
		mb.AssertExpectations(t)
	})

	t.Run("SameStatusIsNoop", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("FetchOrders", ctx, order.Filter{ID: orderID}).
			Return([]order.Order{{ID: orderID, Status: order.StatusCompleted}}, nil)
		mb.On("FetchOrders", ctx, order.Filter{}).Return(all, nil)

		_, err := svc.UpdateOrderStatus(ctx, orderID, order.StatusCompleted)
		require.NoError(t, err)
		mb.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TerminalIsFinal", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("FetchOrders", ctx, order.Filter{ID: orderID}).
			Return([]order.Order{{ID: orderID, Status: order.StatusCancelled}}, nil)

		_, err := svc.UpdateOrderStatus(ctx, orderID, order.StatusPending)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		mb.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		_, err := svc.UpdateOrderStatus(ctx, orderID, "shipped")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
		mb.AssertNotCalled(t, "FetchOrders", mock.Anything, mock.Anything)
	})

	t.Run("OrderMissing", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("FetchOrders", ctx, order.Filter{ID: missingOrderID}).Return([]order.Order{}, nil)

		_, err := svc.UpdateOrderStatus(ctx, missingOrderID, order.StatusCompleted)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestService_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresConfirmation", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		_, err := svc.DeleteOrder(ctx, orderID, false)
		assert.ErrorIs(t, err, ErrConfirmationRequired)
		mb.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
	})

	t.Run("Confirmed", func(t *testing.T) {
		mb := new(backendtest.MockBackend)
		svc := NewService(mb)

		mb.On("DeleteOrder", ctx, orderID).Return(nil)
		mb.On("FetchOrders", ctx, order.Filter{}).Return([]order.Order{}, nil)

		_, err := svc.DeleteOrder(ctx, orderID, true)
		require.NoError(t, err)
		mb.AssertExpectations(t)
	})
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()
	mb := new(backendtest.MockBackend)
	svc := NewService(mb)

	mb.On("FetchOrders", ctx, order.Filter{Status: order.StatusPending}).Return([]order.Order{{ID: orderID}}, nil)

	got, err := svc.ListOrders(ctx, order.StatusPending)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListOrders(ctx, "lost")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestService_MalformedIDs(t *testing.T) {
	ctx := context.Background()
	mb := new(backendtest.MockBackend)
	svc := NewService(mb)

	_, err := svc.UpdateProduct(ctx, "abc", validForm())
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.DeleteProduct(ctx, "abc", true)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.UpdateOrderStatus(ctx, "abc", order.StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.DeleteOrder(ctx, "abc", true)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.False(t, errors.Is(err, backend.ErrRemote))

	// nothing reaches the uuid columns
	assert.Empty(t, mb.Calls)
}
