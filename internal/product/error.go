package product

import (
	"errors"
	"fmt"
)

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Validation & Input --
	ErrInvalidProduct      = errors.New("invalid product")
	ErrNameRequired        = fmt.Errorf("%w: name is required", ErrInvalidProduct)
	ErrPriceRequired       = fmt.Errorf("%w: price is required", ErrInvalidProduct)
	ErrStockRequired       = fmt.Errorf("%w: stock is required", ErrInvalidProduct)
	ErrInvalidPrice        = fmt.Errorf("%w: price must be a number", ErrInvalidProduct)
	ErrInvalidStock        = fmt.Errorf("%w: stock must be a whole number", ErrInvalidProduct)
	ErrNegativePrice       = fmt.Errorf("%w: price cannot be negative", ErrInvalidProduct)
	ErrNegativeStock       = fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	ErrUnknownCategory     = fmt.Errorf("%w: unknown category", ErrInvalidProduct)
	ErrUnknownUnit         = fmt.Errorf("%w: unknown unit", ErrInvalidProduct)
	ErrSalePriceRequired   = fmt.Errorf("%w: sale price is required for products on sale", ErrInvalidProduct)
	ErrInvalidSalePrice    = fmt.Errorf("%w: sale price must be a number", ErrInvalidProduct)
	ErrSalePriceAbovePrice = fmt.Errorf("%w: sale price cannot exceed the price", ErrInvalidProduct)
	ErrInvalidSaleEnd      = fmt.Errorf("%w: sale end must be an RFC 3339 timestamp", ErrInvalidProduct)

	// -- Database & Operation Failures --
	ErrFailedListProducts  = errors.New("failed to list products")
	ErrFailedSaveProduct   = errors.New("failed to save product")
	ErrFailedDeleteProduct = errors.New("failed to delete product")
)
