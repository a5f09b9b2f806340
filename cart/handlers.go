package cart

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

// Store is swapped for a MemoryStorage in tests.
var Store Storage = NewMongoStorage()

// View is what every cart endpoint returns: the lines plus the derived
// totals the header badge and the cart page need.
type View struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func viewOf(items []models.CartItem) View {
	if items == nil {
		items = []models.CartItem{}
	}
	return View{Items: items, TotalItems: TotalItems(items), TotalPrice: TotalPrice(items)}
}

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

// GetCart returns the caller's cart with derived totals.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestContext(r)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("GetCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, viewOf(cart.Items))
}

// AddToCart merges one item into the cart (quantity summed for an
// existing line) and persists the whole document.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestContext(r)
	defer cancel()

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if item.ProductID == "" || item.Name == "" || item.Price <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	cart, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("AddToCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	cart.Items = Add(cart.Items, item)
	if err := Store.Save(ctx, cart); err != nil {
		log.Println("AddToCart save error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, viewOf(cart.Items))
}

// UpdateQuantityHandler sets a line's quantity exactly. Quantities
// below 1 leave the cart untouched and still return 200 with the
// current state.
func UpdateQuantityHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestContext(r)
	defer cancel()

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("UpdateQuantity load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	cart.Items = UpdateQuantity(cart.Items, ps.ByName("id"), payload.Quantity)
	if err := Store.Save(ctx, cart); err != nil {
		log.Println("UpdateQuantity save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, viewOf(cart.Items))
}

// RemoveFromCart deletes a line unconditionally.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestContext(r)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := Store.Load(ctx, userID)
	if err != nil {
		log.Println("RemoveFromCart load error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	cart.Items = Remove(cart.Items, ps.ByName("id"))
	if err := Store.Save(ctx, cart); err != nil {
		log.Println("RemoveFromCart save error:", err)
		http.Error(w, "Failed to update cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, viewOf(cart.Items))
}

// ClearCart drops the whole cart document.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestContext(r)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := Store.Clear(ctx, userID); err != nil {
		log.Println("ClearCart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, viewOf(nil))
}
