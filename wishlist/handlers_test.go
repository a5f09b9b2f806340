package wishlist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techzone/globals"
	"techzone/models"
)

func authedRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), globals.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestToggleWishlistRoundTrip(t *testing.T) {
	Store = NewMemoryStorage()
	body := `{"id":"1","name":"Mouse","price":100,"inStock":true,"category":"mice"}`

	rec := httptest.NewRecorder()
	ToggleWishlist(rec, authedRequest(http.MethodPost, "/api/wishlist/toggle", body, "u1"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Items      []models.WishlistItem `json:"items"`
		InWishlist bool                  `json:"inWishlist"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.InWishlist || len(resp.Items) != 1 {
		t.Fatalf("first toggle should add, got %+v", resp)
	}

	// second toggle removes
	rec = httptest.NewRecorder()
	ToggleWishlist(rec, authedRequest(http.MethodPost, "/api/wishlist/toggle", body, "u1"), nil)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.InWishlist || len(resp.Items) != 0 {
		t.Fatalf("second toggle should remove, got %+v", resp)
	}
}

func TestToggleWishlistRequiresProductID(t *testing.T) {
	Store = NewMemoryStorage()

	rec := httptest.NewRecorder()
	ToggleWishlist(rec, authedRequest(http.MethodPost, "/api/wishlist/toggle", `{"name":"x"}`, "u1"), nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetWishlistRequiresUser(t *testing.T) {
	Store = NewMemoryStorage()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	GetWishlist(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
