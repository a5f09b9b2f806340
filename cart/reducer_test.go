package cart

import (
	"testing"

	"techzone/models"
)

func TestAddMergesSameProductIntoOneLine(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "1", Name: "Mouse", Price: 100, Quantity: 2},
	}

	items = Add(items, models.CartItem{ProductID: "1", Name: "Mouse", Price: 100, Quantity: 1})

	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", items[0].Quantity)
	}
	if got := TotalPrice(items); got != 300 {
		t.Fatalf("expected subtotal 300, got %v", got)
	}
}

func TestAddAppendsNewProduct(t *testing.T) {
	items := []models.CartItem{{ProductID: "1", Price: 100, Quantity: 1}}

	items = Add(items, models.CartItem{ProductID: "2", Price: 50, Quantity: 2})

	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[1].ProductID != "2" || items[1].Quantity != 2 {
		t.Fatalf("unexpected second line: %+v", items[1])
	}
}

func TestAddClampsNonPositiveQuantityToOne(t *testing.T) {
	items := Add(nil, models.CartItem{ProductID: "1", Price: 10, Quantity: 0})
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}

	items = Add(nil, models.CartItem{ProductID: "1", Price: 10, Quantity: -3})
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1, got %d", items[0].Quantity)
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	original := []models.CartItem{{ProductID: "1", Price: 10, Quantity: 1}}

	_ = Add(original, models.CartItem{ProductID: "1", Price: 10, Quantity: 5})

	if original[0].Quantity != 1 {
		t.Fatalf("input slice was mutated: %+v", original[0])
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	items := []models.CartItem{{ProductID: "1", Price: 100, Quantity: 2}}

	items = UpdateQuantity(items, "1", 5)

	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityBelowOneIsNoOp(t *testing.T) {
	items := []models.CartItem{{ProductID: "1", Price: 100, Quantity: 2}}

	got := UpdateQuantity(items, "1", 0)

	if got[0].Quantity != 2 {
		t.Fatalf("expected quantity to stay 2, got %d", got[0].Quantity)
	}
}

func TestRemove(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "1", Quantity: 1},
		{ProductID: "2", Quantity: 1},
	}

	items = Remove(items, "1")
	if len(items) != 1 || items[0].ProductID != "2" {
		t.Fatalf("unexpected items after remove: %+v", items)
	}

	// removing an absent id changes nothing
	items = Remove(items, "nope")
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
}

func TestTotals(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "1", Price: 100, Quantity: 2},
		{ProductID: "2", Price: 49.99, Quantity: 1},
	}

	if got := TotalItems(items); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if got := TotalPrice(items); got != 249.99 {
		t.Fatalf("expected total 249.99, got %v", got)
	}
}
