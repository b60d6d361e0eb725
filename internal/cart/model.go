package cart

import (
	"dalarosa-be/internal/product"

	"github.com/shopspring/decimal"
)

// LineItem is one cart line. Price is the unit price captured when the
// product was first added and is never refreshed.
type LineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	ImageURL string          `json:"image_url"`
}

func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// FromProduct snapshots p at its current effective price.
func FromProduct(p product.Product) LineItem {
	return LineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Quantity: 1,
		ImageURL: p.ImageURL,
	}
}

// Summary is the JSON view of a cart.
type Summary struct {
	Items []LineItem      `json:"items"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}
