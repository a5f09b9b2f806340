package wishlist

import "techzone/models"

// Toggle removes the entry when an entry with the same product id is
// present, otherwise appends it. Calling it twice with the same item is
// the identity.
func Toggle(items []models.WishlistItem, item models.WishlistItem) []models.WishlistItem {
	result := make([]models.WishlistItem, 0, len(items)+1)
	removed := false
	for _, it := range items {
		if it.ProductID == item.ProductID {
			removed = true
			continue
		}
		result = append(result, it)
	}
	if removed {
		return result
	}
	return append(result, item)
}

// Contains reports membership by product id.
func Contains(items []models.WishlistItem, productID string) bool {
	for _, it := range items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}
