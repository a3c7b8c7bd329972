package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RawAuto/CoffeeShop-API/internal/domain"
)

// OrderRepository persists orders and their items in postgres. A save
// writes the header and all items in one transaction; the caller always
// gets back the reloaded aggregate, never the in-memory input.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// FindAll returns a page of orders with their items, newest first.
func (r *OrderRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, status, notes, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []int64{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if items, ok := itemsByOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
	return orders, nil
}

// FindByID returns the order with its items, or nil when absent.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, status, notes, created_at, updated_at
		FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.loadItems(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[id]
	return order, nil
}

// Save inserts the order header and every item atomically, then returns
// the reloaded aggregate with identity, timestamps, and drink names.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, status, notes)
		VALUES ($1, $2, $3)
		RETURNING id`,
		order.CustomerName, string(order.Status), textOrNull(order.Notes),
	).Scan(&orderID)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	for i, item := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, drink_id, size, quantity, cup_text, price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, item.DrinkID, string(item.Size), item.Quantity, textOrNull(item.CupText), decimalToNumeric(item.Price),
		)
		if err != nil {
			return nil, fmt.Errorf("insert order item %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order: %w", err)
	}

	saved, err := r.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("order %d vanished after save", orderID)
	}
	return saved, nil
}

// Update rewrites the order header fields only; items are immutable
// after creation. Returns the reloaded order.
func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET customer_name = $1, status = $2, notes = $3
		WHERE id = $4`,
		order.CustomerName, string(order.Status), textOrNull(order.Notes), order.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update order %d: %w", order.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("update order %d: no row", order.ID)
	}
	return r.FindByID(ctx, order.ID)
}

// Delete removes the order; items go with it via ON DELETE CASCADE.
// Returns false when no row had the given id.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count returns the total number of orders.
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// loadItems fetches the items for a set of orders in one round trip,
// hydrating the denormalized drink name via a catalog join.
func (r *OrderRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.drink_id, oi.size, oi.quantity, oi.cup_text, oi.price, oi.created_at, d.name
		FROM order_items oi
		JOIN drinks d ON d.id = oi.drink_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	itemsByOrder := map[int64][]domain.OrderItem{}
	for rows.Next() {
		var (
			item      domain.OrderItem
			cupText   pgtype.Text
			price     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)
		err := rows.Scan(&item.ID, &item.OrderID, &item.DrinkID, &item.Size, &item.Quantity, &cupText, &price, &createdAt, &item.DrinkName)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if cupText.Valid {
			s := cupText.String
			item.CupText = &s
		}
		item.Price = numericToDecimal(price)
		if createdAt.Valid {
			t := createdAt.Time
			item.CreatedAt = &t
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	return itemsByOrder, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o         domain.Order
		notes     pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&o.ID, &o.CustomerName, &o.Status, &notes, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if notes.Valid {
		s := notes.String
		o.Notes = &s
	}
	if createdAt.Valid {
		t := createdAt.Time
		o.CreatedAt = &t
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		o.UpdatedAt = &t
	}
	o.Items = []domain.OrderItem{}
	return &o, nil
}

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
