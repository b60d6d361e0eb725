package product

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Form is the admin product editor input. Numeric fields arrive as text.
type Form struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	Unit        string `json:"unit"`
	IsFeatured  bool   `json:"is_featured"`
	IsOnSale    bool   `json:"is_on_sale"`
	SalePrice   string `json:"sale_price"`
	SaleEndsAt  string `json:"sale_ends_at"`
}

// Parse converts the form into a validated Product. Category and unit default
// to Alimentos / Unidade like the editor does.
func (f Form) Parse() (*Product, error) {
	name := strings.TrimSpace(f.Name)
	priceText := strings.TrimSpace(f.Price)
	stockText := strings.TrimSpace(f.Stock)

	if name == "" {
		return nil, ErrNameRequired
	}
	if priceText == "" {
		return nil, ErrPriceRequired
	}
	if stockText == "" {
		return nil, ErrStockRequired
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	stock, err := strconv.Atoi(stockText)
	if err != nil {
		return nil, ErrInvalidStock
	}

	p := &Product{
		Name:        name,
		Description: strings.TrimSpace(f.Description),
		Price:       price.Round(2),
		Stock:       stock,
		Category:    Category(strings.TrimSpace(f.Category)),
		Unit:        Unit(strings.TrimSpace(f.Unit)),
		ImageURL:    strings.TrimSpace(f.ImageURL),
		IsFeatured:  f.IsFeatured,
		IsOnSale:    f.IsOnSale,
	}
	if p.Category == "" {
		p.Category = CategoryFood
	}
	if p.Unit == "" {
		p.Unit = UnitPiece
	}

	// The sale fields only matter while the product is on sale.
	if f.IsOnSale {
		saleText := strings.TrimSpace(f.SalePrice)
		if saleText == "" {
			return nil, ErrSalePriceRequired
		}
		sale, err := decimal.NewFromString(saleText)
		if err != nil {
			return nil, ErrInvalidSalePrice
		}
		p.SalePrice = decimal.NewNullDecimal(sale.Round(2))

		if endText := strings.TrimSpace(f.SaleEndsAt); endText != "" {
			endsAt, err := time.Parse(time.RFC3339, endText)
			if err != nil {
				return nil, ErrInvalidSaleEnd
			}
			p.SaleEndsAt = &endsAt
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
