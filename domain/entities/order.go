package entities

import "github.com/shopspring/decimal"

// Order is a purchase of a single product. TotalPrice is denormalized:
// it is derived from the product price and quantity at create/update time
// and is not recomputed if the product price changes afterwards.
type Order struct {
	ID         int             `json:"id"`
	CustomerID int             `json:"customerId"`
	Product    Product         `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OrderDraft carries the caller-supplied fields for creating or updating
// an order. The referenced product must already exist.
type OrderDraft struct {
	CustomerID int `json:"customerId"`
	ProductID  int `json:"productId"`
	Quantity   int `json:"quantity"`
}

// TotalPrice computes the denormalized order total for a unit price.
func (d OrderDraft) TotalPrice(unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
