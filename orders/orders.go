package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"techzone/cart"
	"techzone/db"
	"techzone/models"
	"techzone/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrderInput is the checkout payload. The token is optional;
// identity is resolved separately and passed into CreateOrder.
type CreateOrderInput struct {
	Items       []models.OrderItem `json:"items"`
	Total       float64            `json:"total"`
	ContactInfo models.ContactInfo `json:"contactInfo"`
}

// CreateOrder builds an order from a cart snapshot for the given
// identity. Guest orders simply carry no user association.
func CreateOrder(input CreateOrderInput, who Identity) (models.Order, error) {
	total := input.Total
	if total <= 0 {
		for _, it := range input.Items {
			total += it.Price * float64(it.Quantity)
		}
	}

	order := models.Order{
		OrderID:     "ORD-" + uuid.NewString(),
		UserID:      who.UserID,
		Items:       input.Items,
		Total:       total,
		ContactInfo: input.ContactInfo,
		Status:      StatusProcessing,
		CreatedAt:   time.Now(),
		History: []models.StatusChange{
			{From: "", To: StatusProcessing, By: who.UserID, At: time.Now()},
		},
	}
	return order, nil
}

func validateInput(input CreateOrderInput) string {
	if len(input.Items) == 0 {
		return "Order must contain at least one item"
	}
	for _, it := range input.Items {
		if it.ProductID == "" || it.Quantity < 1 || it.Price <= 0 {
			return "Invalid order item"
		}
	}
	if input.ContactInfo.Name == "" || input.ContactInfo.Phone == "" || input.ContactInfo.Address == "" {
		return "Contact name, phone and address are required"
	}
	return ""
}

// PlaceOrder records a finalized order. Runs behind OptionalAuth: a
// missing or invalid token downgrades to a guest order instead of
// rejecting the request. Note there is no idempotency key; a retry
// after a network ambiguity can create a duplicate order.
func PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Println("PlaceOrder decode error:", err)
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}

	if msg := validateInput(input); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	who := IdentityFromRequest(r)
	order, err := CreateOrder(input, who)
	if err != nil {
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("PlaceOrder InsertOne error:", err)
		http.Error(w, "Order creation failed", http.StatusInternalServerError)
		return
	}

	// The server-side cart mirrors the one just checked out; clear it
	// for signed-in users so a reload doesn't resurrect bought items.
	if !who.IsGuest() {
		if err := cart.Store.Clear(ctx, who.UserID); err != nil {
			log.Println("PlaceOrder cart cleanup error:", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetUserOrders returns the caller's orders, newest first.
func GetUserOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Println("GetUserOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetUserOrders cursor error:", err)
		http.Error(w, "Error reading orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}
