package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DrinkSize is the cup size a drink is served in. Each size carries a
// price multiplier applied to the drink's base price.
type DrinkSize string

const (
	SizeSmall  DrinkSize = "small"
	SizeMedium DrinkSize = "medium"
	SizeLarge  DrinkSize = "large"
)

// PriceMultiplier returns the factor applied to a drink's base price
// for this size. Unknown sizes fall back to the base price unchanged.
func (s DrinkSize) PriceMultiplier() decimal.Decimal {
	switch s {
	case SizeSmall:
		return decimal.NewFromInt(1)
	case SizeMedium:
		return decimal.NewFromFloat(1.3)
	case SizeLarge:
		return decimal.NewFromFloat(1.6)
	}
	return decimal.NewFromInt(1)
}

// ParseDrinkSize converts a wire string into a DrinkSize.
// The match is exact and case-sensitive.
func ParseDrinkSize(s string) (DrinkSize, bool) {
	switch DrinkSize(s) {
	case SizeSmall, SizeMedium, SizeLarge:
		return DrinkSize(s), true
	}
	return "", false
}

// DrinkSizes returns all sizes in menu order.
func DrinkSizes() []DrinkSize {
	return []DrinkSize{SizeSmall, SizeMedium, SizeLarge}
}

// DrinkSizeList returns the valid size values joined for error messages,
// e.g. "small, medium, large".
func DrinkSizeList() string {
	sizes := DrinkSizes()
	values := make([]string, len(sizes))
	for i, s := range sizes {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

// DrinkType classifies a drink as coffee- or tea-based. It carries no
// behavior beyond the classification itself.
type DrinkType string

const (
	TypeCoffee DrinkType = "coffee"
	TypeTea    DrinkType = "tea"
)

// ParseDrinkType converts a wire string into a DrinkType.
func ParseDrinkType(s string) (DrinkType, bool) {
	switch DrinkType(s) {
	case TypeCoffee, TypeTea:
		return DrinkType(s), true
	}
	return "", false
}

// OrderStatus is the preparation state of an order. New orders start as
// StatusPending; any status may be set from any other on update.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the five known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus converts a wire string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(s)
	if st.Valid() {
		return st, true
	}
	return "", false
}

// OrderStatusList returns the valid status values joined for error
// messages, e.g. "pending, preparing, ready, completed, cancelled".
func OrderStatusList() string {
	statuses := []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled}
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

// ValidationErrorType categorizes a validation failure so the HTTP
// boundary can choose a status code (not_found maps to 404, everything
// else to 422).
type ValidationErrorType string

const (
	ErrorNotFound     ValidationErrorType = "not_found"
	ErrorInvalidInput ValidationErrorType = "invalid_input"
	ErrorBusinessRule ValidationErrorType = "business_rule"
)
