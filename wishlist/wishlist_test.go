package wishlist

import (
	"testing"

	"techzone/models"
)

func TestToggleAddsWhenAbsent(t *testing.T) {
	items := Toggle(nil, models.WishlistItem{ProductID: "1", Name: "Mouse"})

	if len(items) != 1 || items[0].ProductID != "1" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	items := []models.WishlistItem{
		{ProductID: "1", Name: "Mouse"},
		{ProductID: "2", Name: "Keyboard"},
	}

	items = Toggle(items, models.WishlistItem{ProductID: "1"})

	if len(items) != 1 || items[0].ProductID != "2" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	start := []models.WishlistItem{{ProductID: "2", Name: "Keyboard"}}
	item := models.WishlistItem{ProductID: "1", Name: "Mouse"}

	items := Toggle(Toggle(start, item), item)

	if len(items) != 1 || items[0].ProductID != "2" {
		t.Fatalf("double toggle should round-trip, got %+v", items)
	}
}

func TestToggleMatchesByProductIDOnly(t *testing.T) {
	items := []models.WishlistItem{{ProductID: "1", Name: "Mouse", Price: 100}}

	// Same id but stale price snapshot still removes the entry.
	items = Toggle(items, models.WishlistItem{ProductID: "1", Name: "Mouse", Price: 90})

	if len(items) != 0 {
		t.Fatalf("expected removal by id, got %+v", items)
	}
}

func TestContains(t *testing.T) {
	items := []models.WishlistItem{{ProductID: "1"}}

	if !Contains(items, "1") {
		t.Fatal("expected Contains to report membership")
	}
	if Contains(items, "2") {
		t.Fatal("expected Contains to reject absent id")
	}
}
