package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrderTotal(t *testing.T) {
	o := NewOrder("John Doe", nil)
	o.AddItem(NewOrderItem(1, SizeSmall, decimal.RequireFromString("2.50"), 2, nil))
	o.AddItem(NewOrderItem(2, SizeMedium, decimal.RequireFromString("3.00"), 1, nil))

	if got := o.Total().StringFixed(2); got != "8.00" {
		t.Errorf("Total: got %s, want 8.00", got)
	}
}

func TestOrderTotalEmpty(t *testing.T) {
	o := NewOrder("John Doe", nil)
	if got := o.Total().StringFixed(2); got != "0.00" {
		t.Errorf("Total of empty order: got %s, want 0.00", got)
	}
}

func TestNewOrderDefaults(t *testing.T) {
	notes := "extra hot"
	o := NewOrder("Jane", &notes)

	if o.Status != StatusPending {
		t.Errorf("new order status: got %s, want %s", o.Status, StatusPending)
	}
	if o.ID != 0 {
		t.Errorf("new order should have no identity, got %d", o.ID)
	}
	if o.Notes == nil || *o.Notes != "extra hot" {
		t.Error("notes not carried")
	}
	if len(o.Items) != 0 {
		t.Errorf("new order should have no items, got %d", len(o.Items))
	}
}

func TestAddItemPreservesOrder(t *testing.T) {
	o := NewOrder("Jane", nil)
	for i := int64(1); i <= 3; i++ {
		o.AddItem(NewOrderItem(i, SizeSmall, decimal.New(2, 0), 1, nil))
	}

	for i, item := range o.Items {
		if item.DrinkID != int64(i+1) {
			t.Fatalf("item %d: got drink %d, want %d", i, item.DrinkID, i+1)
		}
	}
}

func TestSetStatus(t *testing.T) {
	o := NewOrder("Jane", nil)

	if err := o.SetStatus(StatusPreparing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Status != StatusPreparing {
		t.Errorf("status: got %s, want %s", o.Status, StatusPreparing)
	}

	// Any status may be set from any other; no transition graph.
	if err := o.SetStatus(StatusPending); err != nil {
		t.Fatalf("unexpected error going back to pending: %v", err)
	}

	if err := o.SetStatus(OrderStatus("bogus")); err == nil {
		t.Fatal("expected error for invalid status")
	}
	if o.Status != StatusPending {
		t.Errorf("failed SetStatus must not mutate: got %s", o.Status)
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	item := NewOrderItem(1, SizeMedium, decimal.RequireFromString("3.25"), 3, nil)
	if got := item.Subtotal().StringFixed(2); got != "9.75" {
		t.Errorf("Subtotal: got %s, want 9.75", got)
	}
}
