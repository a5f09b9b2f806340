package wishlist

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"techzone/models"
	"techzone/utils"

	"github.com/julienschmidt/httprouter"
)

var Store Storage = NewMongoStorage()

// GetWishlist returns the caller's wishlist items.
func GetWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("GetWishlist load error:", err)
		http.Error(w, "Could not retrieve wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, list.Items)
}

// ToggleWishlist adds the item when absent and removes it when present.
func ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("ToggleWishlist decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if item.ProductID == "" {
		http.Error(w, "Missing product id", http.StatusBadRequest)
		return
	}

	list, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("ToggleWishlist load error:", err)
		http.Error(w, "Could not retrieve wishlist", http.StatusInternalServerError)
		return
	}

	list.Items = Toggle(list.Items, item)
	if err := Store.Save(ctx, list); err != nil {
		log.Println("ToggleWishlist save error:", err)
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":      list.Items,
		"inWishlist": Contains(list.Items, item.ProductID),
	})
}
