package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"techzone/db"
	"techzone/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Storage persists whole cart documents. Save replaces the document
// wholesale, so two writers racing on the same user resolve
// last-write-wins with no merge, same as the browser-storage key this
// replaces.
type Storage interface {
	Load(ctx context.Context, userID string) (models.Cart, error)
	Save(ctx context.Context, cart models.Cart) error
	Clear(ctx context.Context, userID string) error
}

type MongoStorage struct {
	coll *mongo.Collection
}

func NewMongoStorage() *MongoStorage {
	return &MongoStorage{coll: db.CartCollection}
}

func (s *MongoStorage) Load(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

func (s *MongoStorage) Save(ctx context.Context, cart models.Cart) error {
	cart.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"userId": cart.UserID}, cart, opts)
	return err
}

func (s *MongoStorage) Clear(ctx context.Context, userID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}

// MemoryStorage backs tests; same last-write-wins contract.
type MemoryStorage struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string]models.Cart)}
}

func (s *MemoryStorage) Load(_ context.Context, userID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[userID]; ok {
		return cart, nil
	}
	return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
}

func (s *MemoryStorage) Save(_ context.Context, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.UpdatedAt = time.Now()
	s.carts[cart.UserID] = cart
	return nil
}

func (s *MemoryStorage) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
