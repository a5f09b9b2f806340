package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection     *mongo.Collection
	ProductCollection  *mongo.Collection
	CartCollection     *mongo.Collection
	WishlistCollection *mongo.Collection
	OrderCollection    *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("techzone")
	UserCollection = database.Collection("users")
	ProductCollection = database.Collection("products")
	CartCollection = database.Collection("carts")
	WishlistCollection = database.Collection("wishlists")
	OrderCollection = database.Collection("orders")
}
