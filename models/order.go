package models

import "time"

// ContactInfo is the delivery contact captured at checkout.
type ContactInfo struct {
	Name    string `json:"name" bson:"name"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// OrderItem snapshots a cart line at the time of order. Price is the
// unit price when the order was placed, not the live catalog price.
type OrderItem struct {
	ProductID string  `json:"id" bson:"productid"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	From string    `json:"from" bson:"from"`
	To   string    `json:"to" bson:"to"`
	By   string    `json:"by" bson:"by"` // admin user id
	At   time.Time `json:"at" bson:"at"`
}

// Order is created once from a non-empty cart snapshot. UserID is empty
// for guest orders. Status only changes through the admin workflow.
type Order struct {
	OrderID     string         `json:"id" bson:"orderid"`
	UserID      string         `json:"userId,omitempty" bson:"userId,omitempty"`
	Items       []OrderItem    `json:"items" bson:"items"`
	Total       float64        `json:"total" bson:"total"`
	ContactInfo ContactInfo    `json:"contactInfo" bson:"contactInfo"`
	Status      string         `json:"status" bson:"status"`
	History     []StatusChange `json:"statusHistory" bson:"statusHistory"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
}

// Index is an indexing event published to Redis when catalog entries
// change.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}
