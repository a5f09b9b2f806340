package models

import "time"

// Color is one selectable finish of a product.
type Color struct {
	Name string `json:"name" bson:"name"`
	Hex  string `json:"hex" bson:"hex"`
}

// Product is a catalog entry. Slug is the URL-stable unique identifier;
// the display name may change, the slug never does.
type Product struct {
	ProductID   string            `json:"id" bson:"productid"`
	Name        string            `json:"name" bson:"name"`
	Slug        string            `json:"slug" bson:"slug"`
	Price       float64           `json:"price" bson:"price"`
	OldPrice    *float64          `json:"oldPrice,omitempty" bson:"oldPrice,omitempty"`
	Category    string            `json:"category" bson:"category"`
	Image       string            `json:"image" bson:"image"`
	Images      []string          `json:"images" bson:"images"`
	Description string            `json:"description" bson:"description"`
	InStock     bool              `json:"inStock" bson:"inStock"`
	Rating      float64           `json:"rating" bson:"rating"`
	Reviews     int               `json:"reviews" bson:"reviews"`
	Colors      []Color           `json:"colors,omitempty" bson:"colors,omitempty"`
	Specs       map[string]string `json:"specs,omitempty" bson:"specs,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`

	// Derived on read, never stored.
	IsNew bool `json:"isNew" bson:"-"`
}

// NewBadgeWindow is how long a product counts as "new" after creation.
const NewBadgeWindow = 30 * 24 * time.Hour
