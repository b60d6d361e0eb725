package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dalarosa-be/internal/product"

	"github.com/shopspring/decimal"
)

type Sort string

const (
	SortNone Sort = "none"
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// FeaturedLimit is how many on-sale products the home page shows.
const FeaturedLimit = 4

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidSort     = errors.New("sort must be one of none, asc, desc")
	ErrInvalidMaxPrice = errors.New("max price must be a non-negative number")
	ErrInvalidOnSale   = errors.New("on_sale must be a boolean")
)

// Options is the shopper's filter and sort selection. The zero value lists
// every product in fetch order.
type Options struct {
	Category   product.Category // empty means all
	OnSaleOnly bool
	Query      string
	MaxPrice   decimal.NullDecimal
	Sort       Sort
	Limit      int
}

func ParseSort(s string) (Sort, error) {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortNone:
		return SortNone, nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
}

// ParseCategory accepts "" and "all" as no category.
func ParseCategory(s string) (product.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return "", nil
	}
	c := product.Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func ParseMaxPrice(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrInvalidMaxPrice, s)
	}
	return decimal.NewNullDecimal(d), nil
}

func ParseOnSale(s string) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidOnSale, s)
	}
	return b, nil
}

// IsValidationError reports whether err came from parsing shopper input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrInvalidSort) ||
		errors.Is(err, ErrInvalidMaxPrice) ||
		errors.Is(err, ErrInvalidOnSale)
}
