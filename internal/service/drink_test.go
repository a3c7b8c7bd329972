package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
	"github.com/RawAuto/CoffeeShop-API/internal/service"
)

// --- Mock DrinkCatalog ---

type mockDrinkCatalog struct {
	findAllFn    func(ctx context.Context) ([]domain.Drink, error)
	findByIDFn   func(ctx context.Context, id int64) (*domain.Drink, error)
	findBySlugFn func(ctx context.Context, slug string) (*domain.Drink, error)
}

func (m *mockDrinkCatalog) FindAll(ctx context.Context) ([]domain.Drink, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []domain.Drink{}, nil
}

func (m *mockDrinkCatalog) FindByID(ctx context.Context, id int64) (*domain.Drink, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDrinkCatalog) FindBySlug(ctx context.Context, slug string) (*domain.Drink, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, nil
}

func latteDrink() *domain.Drink {
	return &domain.Drink{
		ID:        1,
		Name:      "Latte",
		Slug:      "latte",
		Type:      domain.TypeCoffee,
		BasePrice: decimal.RequireFromString("3.50"),
		HasMilk:   true,
		AllowedSizes: []domain.DrinkSize{
			domain.SizeSmall, domain.SizeMedium, domain.SizeLarge,
		},
		Components: []string{"espresso", "steamed milk"},
	}
}

func espressoDrink() *domain.Drink {
	return &domain.Drink{
		ID:           2,
		Name:         "Espresso",
		Slug:         "espresso",
		Type:         domain.TypeCoffee,
		BasePrice:    decimal.RequireFromString("2.50"),
		AllowedSizes: []domain.DrinkSize{domain.SizeSmall},
		Components:   []string{"espresso"},
	}
}

func TestGetAllDrinks(t *testing.T) {
	catalog := &mockDrinkCatalog{
		findAllFn: func(ctx context.Context) ([]domain.Drink, error) {
			return []domain.Drink{*latteDrink(), *espressoDrink()}, nil
		},
	}
	svc := service.NewDrinkService(catalog)

	drinks, err := svc.GetAllDrinks(context.Background())
	if err != nil {
		t.Fatalf("GetAllDrinks: %v", err)
	}
	if len(drinks) != 2 {
		t.Fatalf("expected 2 drinks, got %d", len(drinks))
	}
	if drinks[0].Name != "Latte" {
		t.Errorf("expected first drink Latte, got %s", drinks[0].Name)
	}
}

func TestGetDrinkByIDAbsent(t *testing.T) {
	svc := service.NewDrinkService(&mockDrinkCatalog{})

	drink, err := svc.GetDrinkByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected no error for absent drink, got %v", err)
	}
	if drink != nil {
		t.Fatalf("expected nil drink, got %+v", drink)
	}
}

func TestValidateDrinkSize(t *testing.T) {
	catalog := &mockDrinkCatalog{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Drink, error) {
			if id == 2 {
				return espressoDrink(), nil
			}
			return nil, nil
		},
	}
	svc := service.NewDrinkService(catalog)

	t.Run("valid", func(t *testing.T) {
		result, err := svc.ValidateDrinkSize(context.Background(), 2, "small")
		if err != nil {
			t.Fatalf("ValidateDrinkSize: %v", err)
		}
		if !result.IsValid() {
			t.Fatalf("expected valid result, got %q", result.Message())
		}
	})

	t.Run("drink not found", func(t *testing.T) {
		result, err := svc.ValidateDrinkSize(context.Background(), 999, "small")
		if err != nil {
			t.Fatalf("ValidateDrinkSize: %v", err)
		}
		if result.IsValid() {
			t.Fatal("expected failure for unknown drink")
		}
		if !result.IsNotFound() {
			t.Errorf("expected not-found classification, got %s", result.ErrorType())
		}
		if !strings.Contains(result.Message(), "Drink with ID 999 not found") {
			t.Errorf("unexpected message: %q", result.Message())
		}
	})

	t.Run("size not allowed", func(t *testing.T) {
		result, err := svc.ValidateDrinkSize(context.Background(), 2, "large")
		if err != nil {
			t.Fatalf("ValidateDrinkSize: %v", err)
		}
		if result.IsValid() {
			t.Fatal("expected failure for disallowed size")
		}
		if result.IsNotFound() {
			t.Error("size failure must not be classified not-found")
		}
		if !strings.Contains(result.Message(), "not available") {
			t.Errorf("unexpected message: %q", result.Message())
		}
		if !strings.Contains(result.Message(), "Allowed sizes: small") {
			t.Errorf("message should enumerate allowed sizes: %q", result.Message())
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		broken := service.NewDrinkService(&mockDrinkCatalog{
			findByIDFn: func(ctx context.Context, id int64) (*domain.Drink, error) {
				return nil, errors.New("connection refused")
			},
		})
		_, err := broken.ValidateDrinkSize(context.Background(), 1, "small")
		if err == nil {
			t.Fatal("expected catalog error to propagate")
		}
	})
}

func TestGetDrinkPrice(t *testing.T) {
	catalog := &mockDrinkCatalog{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Drink, error) {
			switch id {
			case 1:
				return latteDrink(), nil
			case 2:
				return espressoDrink(), nil
			}
			return nil, nil
		},
	}
	svc := service.NewDrinkService(catalog)

	tests := []struct {
		name    string
		drinkID int64
		size    string
		want    string
		ok      bool
	}{
		{"latte small", 1, "small", "3.50", true},
		{"latte medium", 1, "medium", "4.55", true},
		{"latte large", 1, "large", "5.60", true},
		{"espresso small", 2, "small", "2.50", true},
		{"espresso large not allowed", 2, "large", "", false},
		{"unknown drink", 999, "small", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok, err := svc.GetDrinkPrice(context.Background(), tt.drinkID, tt.size)
			if err != nil {
				t.Fatalf("GetDrinkPrice: %v", err)
			}
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && price.StringFixed(2) != tt.want {
				t.Errorf("expected price %s, got %s", tt.want, price.StringFixed(2))
			}

			// same inputs against an unchanged catalog -> same answer
			again, okAgain, err := svc.GetDrinkPrice(context.Background(), tt.drinkID, tt.size)
			if err != nil {
				t.Fatalf("GetDrinkPrice (repeat): %v", err)
			}
			if okAgain != ok || !again.Equal(price) {
				t.Errorf("repeated call diverged: ok=%v price=%s", okAgain, again)
			}
		})
	}
}
