package cart

import (
	"context"
	"testing"

	"techzone/models"
)

func TestMemoryStorageLoadUnknownUserIsEmptyCart(t *testing.T) {
	store := NewMemoryStorage()

	cart, err := store.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.UserID != "u1" || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart for u1, got %+v", cart)
	}
}

func TestStorageSaveIsLastWriteWins(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()
	userID := "u1"

	// Two sessions load the same cart.
	a, _ := store.Load(ctx, userID)
	b, _ := store.Load(ctx, userID)

	// Session A adds a mouse, session B adds a keyboard.
	a.Items = Add(a.Items, models.CartItem{ProductID: "1", Name: "Mouse", Price: 100, Quantity: 1})
	b.Items = Add(b.Items, models.CartItem{ProductID: "2", Name: "Keyboard", Price: 109, Quantity: 1})

	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := store.Save(ctx, b); err != nil {
		t.Fatalf("save b: %v", err)
	}

	// B saved last, so A's addition is gone. Whole-document replace
	// means no merge.
	got, _ := store.Load(ctx, userID)
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 line after racing saves, got %d", len(got.Items))
	}
	if got.Items[0].ProductID != "2" {
		t.Fatalf("expected the last writer's item, got %+v", got.Items[0])
	}
}

func TestMemoryStorageClear(t *testing.T) {
	store := NewMemoryStorage()
	ctx := context.Background()

	cart := models.Cart{UserID: "u1", Items: []models.CartItem{{ProductID: "1", Quantity: 1}}}
	if err := store.Save(ctx, cart); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx, "u1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, _ := store.Load(ctx, "u1")
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", got.Items)
	}
}
