package entities

import "github.com/shopspring/decimal"

// Product is a catalog item. Orders reference products by id; the order
// side never mutates them.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductDraft carries the caller-supplied fields for creating or
// replacing a product. The id is store-generated.
type ProductDraft struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
