package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

// OrderStore defines the persistence operations needed by the order
// service. Satisfied by *repository.OrderRepository.
type OrderStore interface {
	FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// DrinkPricer is the slice of the drink service the order service
// depends on for item validation and price resolution.
type DrinkPricer interface {
	ValidateDrinkSize(ctx context.Context, drinkID int64, size string) (domain.ValidationResult, error)
	GetDrinkPrice(ctx context.Context, drinkID int64, size string) (decimal.Decimal, bool, error)
}

// CreateOrderItemInput is one requested line item. Pointer fields
// distinguish absent from zero-valued input.
type CreateOrderItemInput struct {
	DrinkID  *int64
	Size     *string
	Quantity *int
	CupText  *string
}

// UpdateOrderInput carries a partial order update. Nil customer name
// and status mean "leave unchanged". Notes uses NotesSet because a
// present null is a deliberate clear, not an omission.
type UpdateOrderInput struct {
	CustomerName *string
	Status       *string
	Notes        *string
	NotesSet     bool
}

// OrderService implements the order lifecycle: creation with the full
// validation pipeline, listing, partial updates, and deletion.
type OrderService struct {
	store  OrderStore
	drinks DrinkPricer
}

// NewOrderService creates a new OrderService.
func NewOrderService(store OrderStore, drinks DrinkPricer) *OrderService {
	return &OrderService{store: store, drinks: drinks}
}

// GetAllOrders returns a page of orders, newest first.
func (s *OrderService) GetAllOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return s.store.FindAll(ctx, limit, offset)
}

// CountOrders returns the total number of orders.
func (s *OrderService) CountOrders(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// GetOrderByID returns the order with its items, or nil when absent.
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.store.FindByID(ctx, id)
}

// CreateOrder runs the full validation pipeline and, when every check
// passes, persists the order with prices snapshotted from the catalog.
// Validation stops at the first failing check; the returned order is
// non-nil only when the result is valid.
func (s *OrderService) CreateOrder(ctx context.Context, customerName string, items []CreateOrderItemInput, notes *string) (*domain.Order, domain.ValidationResult, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, domain.Failure("Customer name is required"), nil
	}
	if len(items) == 0 {
		return nil, domain.Failure("Order must contain at least one item"), nil
	}

	order := domain.NewOrder(strings.TrimSpace(customerName), notes)

	for i, item := range items {
		if item.DrinkID == nil {
			return nil, domain.Failure(fmt.Sprintf("Item %d: drink_id is required", i)), nil
		}
		if item.Size == nil {
			return nil, domain.Failure(fmt.Sprintf("Item %d: size is required", i)), nil
		}
		size := *item.Size
		parsedSize, ok := domain.ParseDrinkSize(size)
		if !ok {
			return nil, domain.Failure(fmt.Sprintf(
				"Item %d: Invalid size '%s'. Valid sizes: %s", i, size, domain.DrinkSizeList(),
			)), nil
		}

		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		if quantity < domain.MinItemQuantity || quantity > domain.MaxItemQuantity {
			return nil, domain.Failure(fmt.Sprintf(
				"Item %d: Quantity must be between %d and %d", i, domain.MinItemQuantity, domain.MaxItemQuantity,
			)), nil
		}

		result, err := s.drinks.ValidateDrinkSize(ctx, *item.DrinkID, size)
		if err != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("item[%d]: %w", i, err)
		}
		if !result.IsValid() {
			return nil, prefixItemFailure(i, result), nil
		}

		price, ok, err := s.drinks.GetDrinkPrice(ctx, *item.DrinkID, size)
		if err != nil {
			return nil, domain.ValidationResult{}, fmt.Errorf("item[%d]: %w", i, err)
		}
		if !ok {
			return nil, domain.Failure(fmt.Sprintf("Item %d: Unable to calculate price", i)), nil
		}

		order.AddItem(domain.NewOrderItem(*item.DrinkID, parsedSize, price, quantity, item.CupText))
	}

	saved, err := s.store.Save(ctx, order)
	if err != nil {
		return nil, domain.ValidationResult{}, fmt.Errorf("save order: %w", err)
	}
	return saved, domain.Success(), nil
}

// prefixItemFailure labels a per-item validation failure with the item
// index, keeping the original error classification intact.
func prefixItemFailure(index int, result domain.ValidationResult) domain.ValidationResult {
	msg := fmt.Sprintf("Item %d: %s", index, result.Message())
	switch result.ErrorType() {
	case domain.ErrorNotFound:
		return domain.NotFound(msg)
	case domain.ErrorBusinessRule:
		return domain.BusinessFailure(msg)
	default:
		return domain.Failure(msg)
	}
}

// UpdateOrder applies a partial update to an existing order. Fields
// absent from the input keep their stored values; notes may be cleared
// by sending an explicit null.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, input UpdateOrderInput) (*domain.Order, domain.ValidationResult, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ValidationResult{}, fmt.Errorf("find order %d: %w", id, err)
	}
	if order == nil {
		return nil, domain.NotFound(fmt.Sprintf("Order with ID %d not found", id)), nil
	}

	if input.CustomerName != nil {
		name := strings.TrimSpace(*input.CustomerName)
		if name == "" {
			return nil, domain.Failure("Customer name cannot be empty"), nil
		}
		order.CustomerName = name
	}

	if input.Status != nil {
		status, ok := domain.ParseOrderStatus(*input.Status)
		if !ok {
			return nil, domain.Failure(fmt.Sprintf(
				"Invalid status. Valid statuses: %s", domain.OrderStatusList(),
			)), nil
		}
		order.Status = status
	}

	if input.NotesSet {
		order.Notes = input.Notes
	}

	updated, err := s.store.Update(ctx, order)
	if err != nil {
		return nil, domain.ValidationResult{}, fmt.Errorf("update order %d: %w", id, err)
	}
	return updated, domain.Success(), nil
}

// DeleteOrder removes the order and its items. The validation result
// is a not-found failure when no order has the given id.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) (domain.ValidationResult, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("delete order %d: %w", id, err)
	}
	if !deleted {
		return domain.NotFound(fmt.Sprintf("Order with ID %d not found", id)), nil
	}
	return domain.Success(), nil
}
