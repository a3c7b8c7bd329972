package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

// DrinkCatalog defines the catalog access needed by the drink service.
// Satisfied by *repository.DrinkRepository; narrow interface for testability.
type DrinkCatalog interface {
	FindAll(ctx context.Context) ([]domain.Drink, error)
	FindByID(ctx context.Context, id int64) (*domain.Drink, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Drink, error)
}

// DrinkService answers read-only queries against the drink catalog and
// owns the size-for-drink and pricing rules used during order creation.
type DrinkService struct {
	catalog DrinkCatalog
}

// NewDrinkService creates a new DrinkService.
func NewDrinkService(catalog DrinkCatalog) *DrinkService {
	return &DrinkService{catalog: catalog}
}

// GetAllDrinks returns the full catalog, unfiltered.
func (s *DrinkService) GetAllDrinks(ctx context.Context) ([]domain.Drink, error) {
	return s.catalog.FindAll(ctx)
}

// GetDrinkByID returns the drink, or nil when no drink has that id.
// Absence is a legitimate empty result, not an error.
func (s *DrinkService) GetDrinkByID(ctx context.Context, id int64) (*domain.Drink, error) {
	return s.catalog.FindByID(ctx, id)
}

// GetDrinkBySlug returns the drink with the given slug, or nil.
func (s *DrinkService) GetDrinkBySlug(ctx context.Context, slug string) (*domain.Drink, error) {
	return s.catalog.FindBySlug(ctx, slug)
}

// ValidateDrinkSize checks that the drink exists and serves the given
// size. A missing drink is a not-found failure; a disallowed size is a
// business rule failure whose message enumerates the allowed sizes.
func (s *DrinkService) ValidateDrinkSize(ctx context.Context, drinkID int64, size string) (domain.ValidationResult, error) {
	drink, err := s.catalog.FindByID(ctx, drinkID)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("find drink %d: %w", drinkID, err)
	}
	if drink == nil {
		return domain.NotFound(fmt.Sprintf("Drink with ID %d not found", drinkID)), nil
	}
	if !drink.IsSizeAllowed(size) {
		return domain.BusinessFailure(fmt.Sprintf(
			"Size '%s' is not available for %s. Allowed sizes: %s",
			size, drink.Name, drink.AllowedSizeList(),
		)), nil
	}
	return domain.Success(), nil
}

// GetDrinkPrice resolves the price for the drink in the given size.
// The boolean is false when the drink does not exist or does not serve
// the size; callers must check it before using the price.
func (s *DrinkService) GetDrinkPrice(ctx context.Context, drinkID int64, size string) (decimal.Decimal, bool, error) {
	drink, err := s.catalog.FindByID(ctx, drinkID)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("find drink %d: %w", drinkID, err)
	}
	if drink == nil || !drink.IsSizeAllowed(size) {
		return decimal.Zero, false, nil
	}
	parsed, ok := domain.ParseDrinkSize(size)
	if !ok {
		return decimal.Zero, false, nil
	}
	return drink.PriceForSize(parsed), true, nil
}
