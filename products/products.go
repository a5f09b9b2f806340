package products

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"techzone/catalog"
	"techzone/db"
	"techzone/models"
	"techzone/mq"
	"techzone/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func markNew(products []models.Product) {
	cutoff := time.Now().Add(-models.NewBadgeWindow)
	for i := range products {
		products[i].IsNew = products[i].CreatedAt.After(cutoff)
	}
}

// GetProducts lists the catalog. The query string (q, category, min,
// max, sort) is translated by the shared catalog filter into one Mongo
// query; q matches name, description and category.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	f := catalog.FromQuery(r.URL.Query())
	opts := options.Find().SetSort(f.SortDoc())

	cursor, err := db.ProductCollection.Find(ctx, f.Selector(), opts)
	if err != nil {
		log.Println("GetProducts Find error:", err)
		http.Error(w, "Failed to fetch products", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var list []models.Product
	if err := cursor.All(ctx, &list); err != nil {
		log.Println("GetProducts cursor error:", err)
		http.Error(w, "Error reading products", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Product{}
	}
	markNew(list)

	utils.RespondWithJSON(w, http.StatusOK, list)
}

func respondWithProduct(w http.ResponseWriter, product models.Product, err error) {
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	product.IsNew = product.CreatedAt.After(time.Now().Add(-models.NewBadgeWindow))
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// GetProductByID serves GET /api/products/:id. The same route position
// also carries the /slug/ prefix; GetProductBySlug handles that arm.
func GetProductByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": ps.ByName("id")}).Decode(&product)
	respondWithProduct(w, product, err)
}

// GetProductBySlug serves GET /api/products/slug/:slug. Registered as
// /api/products/:id/:slug because httprouter can't mix a static
// segment with the :id wildcard; anything but the literal "slug" arm
// is a 404.
func GetProductBySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "slug" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&product)
	respondWithProduct(w, product, err)
}

// CreateProduct adds a catalog entry (admin only) and emits an index
// event for the autocomplete worker.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if product.Name == "" || product.Price <= 0 || product.Category == "" {
		http.Error(w, "Name, price and category are required", http.StatusBadRequest)
		return
	}

	product.ProductID = "p" + utils.GenerateRandomString(10)
	if product.Slug == "" {
		product.Slug = utils.Slugify(product.Name)
	}
	product.CreatedAt = time.Now()

	// Slug must stay unique; it is the public identifier.
	err := db.ProductCollection.FindOne(ctx, bson.M{"slug": product.Slug}).Err()
	if err == nil {
		http.Error(w, "Slug already in use", http.StatusConflict)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	mq.Emit(ctx, "product-created", models.Index{EntityType: "product", Method: "POST", EntityId: product.ProductID})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// UpdateProduct edits a catalog entry (admin only). The slug is not
// editable; it must survive renames.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.Product
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	productID := ps.ByName("id")
	update := bson.M{"$set": bson.M{
		"name":        input.Name,
		"price":       input.Price,
		"oldPrice":    input.OldPrice,
		"category":    input.Category,
		"image":       input.Image,
		"images":      input.Images,
		"description": input.Description,
		"inStock":     input.InStock,
		"colors":      input.Colors,
		"specs":       input.Specs,
	}}

	result, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, update)
	if err != nil {
		log.Println("UpdateProduct error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	mq.Emit(ctx, "product-updated", models.Index{EntityType: "product", Method: "PUT", EntityId: productID})

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}
