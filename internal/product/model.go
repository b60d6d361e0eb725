package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFood     Category = "Alimentos"
	CategoryDrinks   Category = "Bebidas"
	CategoryHygiene  Category = "Higiene"
	CategoryCleaning Category = "Limpeza"
	CategoryButchery Category = "Açougue"
	CategoryOther    Category = "Outros"
)

// StorefrontCategories are the categories offered as filters on the product listing.
var StorefrontCategories = []Category{
	CategoryFood,
	CategoryDrinks,
	CategoryHygiene,
	CategoryCleaning,
}

// Categories accepted when creating or editing a product.
var Categories = []Category{
	CategoryFood,
	CategoryDrinks,
	CategoryHygiene,
	CategoryCleaning,
	CategoryButchery,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Unit string

const (
	UnitPiece   Unit = "Unidade"
	UnitKilo    Unit = "Kg"
	UnitLiter   Unit = "Litro"
	UnitPackage Unit = "Pacote"
	UnitBox     Unit = "Caixa"
)

var Units = []Unit{UnitPiece, UnitKilo, UnitLiter, UnitPackage, UnitBox}

func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.Decimal     `json:"price"`
	Stock       int                 `json:"stock"`
	Category    Category            `json:"category"`
	Unit        Unit                `json:"unit"`
	ImageURL    string              `json:"image_url"`
	IsFeatured  bool                `json:"is_featured"`
	IsOnSale    bool                `json:"is_on_sale"`
	SalePrice   decimal.NullDecimal `json:"sale_price"`
	SaleEndsAt  *time.Time          `json:"sale_ends_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// EffectivePrice is the sale price when the product is on sale and carries a
// non-zero sale price, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale && p.SalePrice.Valid && !p.SalePrice.Decimal.IsZero() {
		return p.SalePrice.Decimal
	}
	return p.Price
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// Validate checks the record invariants enforced before any write.
func (p Product) Validate() error {
	switch {
	case p.Name == "":
		return ErrNameRequired
	case p.Price.IsNegative():
		return ErrNegativePrice
	case p.Stock < 0:
		return ErrNegativeStock
	case !p.Category.Valid():
		return ErrUnknownCategory
	case !p.Unit.Valid():
		return ErrUnknownUnit
	}

	if p.IsOnSale {
		if !p.SalePrice.Valid {
			return ErrSalePriceRequired
		}
		if p.SalePrice.Decimal.IsNegative() {
			return ErrNegativePrice
		}
		if p.SalePrice.Decimal.GreaterThan(p.Price) {
			return ErrSalePriceAbovePrice
		}
	}
	return nil
}

// Filter holds the equality filters understood by the product collection.
// Zero values mean "no filter".
type Filter struct {
	ID       string
	Category Category
	OnSale   *bool
	Limit    int
}
