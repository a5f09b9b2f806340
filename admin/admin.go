package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"techzone/db"
	"techzone/models"
	"techzone/orders"
	"techzone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllOrders returns every order, newest first, for the admin UI.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Println("GetAllOrders Find error:", err)
		http.Error(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var all []models.Order
	if err := cursor.All(ctx, &all); err != nil {
		log.Println("GetAllOrders cursor error:", err)
		http.Error(w, "Error processing orders", http.StatusInternalServerError)
		return
	}
	if all == nil {
		all = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, all)
}

// UpdateOrderStatus applies one transition through the workflow table
// and appends it to the order's status history.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("id")
	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	adminID := utils.GetUserIDFromRequest(r)
	if err := orders.Transition(&order, payload.Status, adminID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"status":        order.Status,
		"statusHistory": order.History,
	}}
	if _, err := db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": orderID}, update); err != nil {
		log.Println("UpdateOrderStatus update error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}
