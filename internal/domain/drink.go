package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Drink is a catalog entry describing a purchasable beverage and its
// size and pricing rules. Drinks are read from the catalog store and
// never mutated by this service.
type Drink struct {
	ID           int64
	Name         string
	Slug         string
	Type         DrinkType
	BasePrice    decimal.Decimal
	HasMilk      bool
	AllowedSizes []DrinkSize
	Components   []string
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// IsSizeAllowed reports whether the given size string is a member of
// the drink's allowed sizes. The comparison is exact and
// case-sensitive, so unknown size strings are simply not allowed.
func (d Drink) IsSizeAllowed(size string) bool {
	for _, s := range d.AllowedSizes {
		if string(s) == size {
			return true
		}
	}
	return false
}

// AllowedSizeList returns the drink's allowed sizes joined for error
// messages, e.g. "small, medium".
func (d Drink) AllowedSizeList() string {
	out := ""
	for i, s := range d.AllowedSizes {
		if i > 0 {
			out += ", "
		}
		out += string(s)
	}
	return out
}

// PriceForSize returns the base price scaled by the size multiplier,
// rounded to 2 decimal places. It computes a price even for sizes the
// drink does not allow; order creation must fail validation before
// reaching this for a disallowed size.
func (d Drink) PriceForSize(size DrinkSize) decimal.Decimal {
	return d.BasePrice.Mul(size.PriceMultiplier()).Round(2)
}
