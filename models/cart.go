package models

import "time"

// CartItem is a single line in a user's cart. Quantity is never below 1.
type CartItem struct {
	ProductID     string  `json:"id" bson:"productid"`
	Name          string  `json:"name" bson:"name"`
	Price         float64 `json:"price" bson:"price"` // unit price
	Image         string  `json:"image" bson:"image"`
	Quantity      int     `json:"quantity" bson:"quantity"`
	SelectedColor string  `json:"selectedColor,omitempty" bson:"selectedColor,omitempty"`
}

// Cart is the whole per-user cart document. It is written wholesale on
// every mutation, so concurrent writers resolve last-write-wins just
// like the browser-storage key it replaces.
type Cart struct {
	UserID    string     `json:"userId" bson:"userId"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// WishlistItem has no quantity; membership is toggled by product id.
type WishlistItem struct {
	ProductID string   `json:"id" bson:"productid"`
	Name      string   `json:"name" bson:"name"`
	Price     float64  `json:"price" bson:"price"`
	OldPrice  *float64 `json:"oldPrice,omitempty" bson:"oldPrice,omitempty"`
	Image     string   `json:"image" bson:"image"`
	InStock   bool     `json:"inStock" bson:"inStock"`
	Category  string   `json:"category" bson:"category"`
}

type Wishlist struct {
	UserID    string         `json:"userId" bson:"userId"`
	Items     []WishlistItem `json:"items" bson:"items"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}
