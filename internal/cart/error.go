package cart

import "errors"

var (
	// -- Validation & Input --
	ErrMissingProductID = errors.New("cart item has no product id")

	// -- Resource State --
	ErrProductNotFound  = errors.New("product not found")
	ErrOutOfStock       = errors.New("product is out of stock")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)
