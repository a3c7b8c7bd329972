package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root for a customer's purchase request. It
// owns its items; items reference drinks by id only. ID is zero until
// the store assigns one on first save.
type Order struct {
	ID           int64
	CustomerName string
	Status       OrderStatus
	Notes        *string
	Items        []OrderItem
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// NewOrder builds an empty order in the pending state.
func NewOrder(customerName string, notes *string) *Order {
	return &Order{
		CustomerName: customerName,
		Status:       StatusPending,
		Notes:        notes,
	}
}

// AddItem appends an item; insertion order is display order.
func (o *Order) AddItem(item OrderItem) {
	o.Items = append(o.Items, item)
}

// Total is the sum of unit price times quantity over all items, rounded
// to 2 decimal places. It is always derived, never stored.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// SetStatus transitions the order to the given status. An invalid
// status signals misuse by calling code and is returned as a plain
// error, not a ValidationResult: user-supplied status strings must be
// parsed with ParseOrderStatus before reaching this.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid order status: %q", status)
	}
	o.Status = status
	return nil
}
