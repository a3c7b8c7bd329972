package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

// DrinkRepository reads the drink catalog from postgres.
type DrinkRepository struct {
	pool *pgxpool.Pool
}

// NewDrinkRepository creates a new DrinkRepository.
func NewDrinkRepository(pool *pgxpool.Pool) *DrinkRepository {
	return &DrinkRepository{pool: pool}
}

const drinkColumns = `id, name, slug, type, base_price, has_milk, allowed_sizes, components, created_at, updated_at`

// FindAll returns the whole catalog ordered by name.
func (r *DrinkRepository) FindAll(ctx context.Context) ([]domain.Drink, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+drinkColumns+` FROM drinks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query drinks: %w", err)
	}
	defer rows.Close()

	drinks := []domain.Drink{}
	for rows.Next() {
		drink, err := scanDrink(rows)
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, *drink)
	}
	return drinks, rows.Err()
}

// FindByID returns the drink with the given id, or nil when absent.
func (r *DrinkRepository) FindByID(ctx context.Context, id int64) (*domain.Drink, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+drinkColumns+` FROM drinks WHERE id = $1`, id)
	drink, err := scanDrink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return drink, err
}

// FindBySlug returns the drink with the given slug, or nil when absent.
func (r *DrinkRepository) FindBySlug(ctx context.Context, slug string) (*domain.Drink, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+drinkColumns+` FROM drinks WHERE slug = $1`, slug)
	drink, err := scanDrink(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return drink, err
}

func scanDrink(row pgx.Row) (*domain.Drink, error) {
	var (
		d          domain.Drink
		basePrice  pgtype.Numeric
		sizesJSON  []byte
		compsJSON  []byte
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(&d.ID, &d.Name, &d.Slug, &d.Type, &basePrice, &d.HasMilk, &sizesJSON, &compsJSON, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan drink: %w", err)
	}

	d.BasePrice = numericToDecimal(basePrice)
	if err := json.Unmarshal(sizesJSON, &d.AllowedSizes); err != nil {
		return nil, fmt.Errorf("decode allowed_sizes for drink %d: %w", d.ID, err)
	}
	if err := json.Unmarshal(compsJSON, &d.Components); err != nil {
		return nil, fmt.Errorf("decode components for drink %d: %w", d.ID, err)
	}
	if createdAt.Valid {
		t := createdAt.Time
		d.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		d.UpdatedAt = &t
	}
	return &d, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	val, err := n.Value()
	if err != nil || val == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val.(string))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(d.StringFixed(2))
	return n
}
