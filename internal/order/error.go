package order

import (
	"errors"
	"fmt"
)

var (
	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status transition not allowed")

	// -- Validation & Input --
	ErrInvalidOrder            = errors.New("invalid order")
	ErrCustomerNameRequired    = fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	ErrCustomerPhoneRequired   = fmt.Errorf("%w: customer phone is required", ErrInvalidOrder)
	ErrDeliveryAddressRequired = fmt.Errorf("%w: delivery address is required", ErrInvalidOrder)
	ErrNoItems                 = fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	ErrInvalidItem             = fmt.Errorf("%w: order item needs a product id and a positive quantity", ErrInvalidOrder)
	ErrInvalidStatus           = fmt.Errorf("%w: unknown status", ErrInvalidOrder)

	// -- Database & Operation Failures --
	ErrFailedListOrders   = errors.New("failed to list orders")
	ErrFailedCreateOrder  = errors.New("failed to create order")
	ErrFailedUpdateStatus = errors.New("failed to update order status")
	ErrFailedDeleteOrder  = errors.New("failed to delete order")
)
