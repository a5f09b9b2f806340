package cart

import "techzone/models"

// Pure state transitions over a cart's item list. Handlers load the
// current list, apply one of these, and persist the result; nothing
// here touches storage.

// Add merges an item into the list. An existing line with the same
// product id gets its quantity incremented; otherwise a new line is
// appended. A non-positive quantity on the incoming item means 1.
func Add(items []models.CartItem, item models.CartItem) []models.CartItem {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}

	result := make([]models.CartItem, len(items))
	copy(result, items)

	for i := range result {
		if result[i].ProductID == item.ProductID {
			result[i].Quantity += qty
			return result
		}
	}

	item.Quantity = qty
	return append(result, item)
}

// UpdateQuantity sets a line's quantity exactly. Quantities below 1
// leave the list unchanged; removal is Remove's job, not a side effect
// of counting down.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity < 1 {
		return items
	}

	result := make([]models.CartItem, len(items))
	copy(result, items)

	for i := range result {
		if result[i].ProductID == productID {
			result[i].Quantity = quantity
		}
	}
	return result
}

// Remove deletes the line unconditionally. Removing an absent id is a
// no-op.
func Remove(items []models.CartItem, productID string) []models.CartItem {
	result := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			result = append(result, it)
		}
	}
	return result
}

// TotalItems is the sum of line quantities.
func TotalItems(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity per line.
func TotalPrice(items []models.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
