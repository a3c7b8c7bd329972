package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quantity bounds for a single order line.
const (
	MinItemQuantity = 1
	MaxItemQuantity = 10
)

// OrderItem is one line of an order: a drink in a specific size with a
// quantity and the unit price resolved at creation time. The price is a
// snapshot; it is never recomputed even if the catalog price changes
// later. DrinkName is populated only when the item was loaded from the
// store with its catalog join.
type OrderItem struct {
	ID        int64
	OrderID   int64
	DrinkID   int64
	Size      DrinkSize
	Quantity  int
	CupText   *string
	Price     decimal.Decimal
	DrinkName string
	CreatedAt *time.Time
}

// NewOrderItem builds an order line with the resolved unit price.
func NewOrderItem(drinkID int64, size DrinkSize, price decimal.Decimal, quantity int, cupText *string) OrderItem {
	return OrderItem{
		DrinkID:  drinkID,
		Size:     size,
		Quantity: quantity,
		CupText:  cupText,
		Price:    price,
	}
}

// Subtotal is the line total: unit price times quantity, rounded to 2
// decimal places.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
