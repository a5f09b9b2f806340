package products

import (
	"context"
	"log"
	"time"

	"techzone/db"
	"techzone/models"
	"techzone/search"

	"go.mongodb.org/mongo-driver/bson"
)

func floatPtr(f float64) *float64 { return &f }

var demoCatalog = []models.Product{
	{
		ProductID:   "p-g-pro-x-superlight",
		Name:        "Logitech G Pro X Superlight",
		Slug:        "logitech-g-pro-x-superlight",
		Price:       149.99,
		OldPrice:    floatPtr(169.99),
		Category:    "mice",
		Image:       "/images/products/g-pro-x-superlight.jpg",
		Description: "Ultra-lightweight wireless gaming mouse with HERO 25K sensor. Less than 63 grams with up to 70 hours of battery life.",
		InStock:     true,
		Rating:      4.8,
		Reviews:     1247,
		Colors: []models.Color{
			{Name: "Black", Hex: "#1a1a1a"},
			{Name: "White", Hex: "#f5f5f5"},
			{Name: "Magenta", Hex: "#d6359d"},
		},
		Specs: map[string]string{
			"Sensor":     "HERO 25K",
			"Weight":     "63 g",
			"Battery":    "70 h",
			"Connection": "LIGHTSPEED Wireless",
		},
	},
	{
		ProductID:   "p-keychron-k2-pro",
		Name:        "Keychron K2 Pro",
		Slug:        "keychron-k2-pro",
		Price:       109.00,
		Category:    "keyboards",
		Image:       "/images/products/keychron-k2-pro.jpg",
		Description: "Wireless mechanical keyboard with QMK/VIA support, hot-swappable switches and a 75% layout.",
		InStock:     true,
		Rating:      4.6,
		Reviews:     589,
		Colors: []models.Color{
			{Name: "Carbon Black", Hex: "#2b2b2b"},
		},
		Specs: map[string]string{
			"Layout":     "75%",
			"Switches":   "Gateron G Pro (hot-swap)",
			"Connection": "Bluetooth 5.1 / USB-C",
			"Backlight":  "RGB",
		},
	},
	{
		ProductID:   "p-hyperx-cloud-alpha",
		Name:        "HyperX Cloud Alpha",
		Slug:        "hyperx-cloud-alpha",
		Price:       79.99,
		OldPrice:    floatPtr(99.99),
		Category:    "headsets",
		Image:       "/images/products/hyperx-cloud-alpha.jpg",
		Description: "Gaming headset with dual chamber drivers for cleaner sound, durable aluminum frame and detachable noise-cancelling mic.",
		InStock:     true,
		Rating:      4.7,
		Reviews:     2031,
		Colors: []models.Color{
			{Name: "Red/Black", Hex: "#b91c1c"},
		},
		Specs: map[string]string{
			"Drivers":    "50 mm dual chamber",
			"Connection": "3.5 mm",
			"Microphone": "Detachable, noise-cancelling",
			"Weight":     "336 g",
		},
	},
	{
		ProductID:   "p-qck-heavy-xxl",
		Name:        "SteelSeries QcK Heavy XXL",
		Slug:        "steelseries-qck-heavy-xxl",
		Price:       34.99,
		Category:    "mousepads",
		Image:       "/images/products/qck-heavy-xxl.jpg",
		Description: "Extra-thick cloth mousepad covering the whole desk. Non-slip rubber base and micro-woven surface for precise tracking.",
		InStock:     false,
		Rating:      4.9,
		Reviews:     764,
		Specs: map[string]string{
			"Size":      "900 x 400 x 4 mm",
			"Surface":   "Micro-woven cloth",
			"Base":      "Non-slip rubber",
			"Stitching": "None",
		},
	},
}

// SeedDemoCatalog inserts the demo products when the catalog is empty
// and primes the autocomplete index. Safe to call on every startup.
func SeedDemoCatalog(ctx context.Context) error {
	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(demoCatalog))
	for i := range demoCatalog {
		p := demoCatalog[i]
		p.CreatedAt = now
		docs = append(docs, p)
	}
	if _, err := db.ProductCollection.InsertMany(ctx, docs); err != nil {
		return err
	}

	for _, p := range demoCatalog {
		if err := search.IndexProduct(ctx, p.Name, p.Slug); err != nil {
			log.Printf("seed: autocomplete index for %s failed: %v", p.Slug, err)
		}
	}

	log.Printf("Seeded catalog with %d demo products", len(demoCatalog))
	return nil
}
