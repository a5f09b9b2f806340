package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"techzone/db"
	"techzone/models"
	"techzone/rdx"
	"techzone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProfile returns the caller's profile view. The trimmed DTO keeps
// the password hash out of responses.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if cached, err := rdx.RdxGet("profile:" + userID); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	profileJSON, err := json.Marshal(user.Profile())
	if err != nil {
		http.Error(w, "Failed to encode profile", http.StatusInternalServerError)
		return
	}

	// Best-effort cache write
	if err := rdx.SetWithExpiry("profile:"+userID, string(profileJSON), 10*time.Minute); err != nil {
		log.Printf("Profile cache write failed: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(profileJSON)
}

// EditProfile updates name, phone and address. Email is identity and
// stays fixed.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if input.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{
		"name":       input.Name,
		"phone":      input.Phone,
		"address":    input.Address,
		"updated_at": time.Now(),
	}}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, update); err != nil {
		log.Println("EditProfile update error:", err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	if _, err := rdx.RdxDel("profile:" + userID); err != nil {
		log.Printf("Profile cache invalidation failed: %v", err)
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}
