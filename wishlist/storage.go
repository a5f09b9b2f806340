package wishlist

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

// Storage mirrors the cart's adapter: whole-document replace,
// last-write-wins between concurrent writers.
type Storage interface {
	Load(ctx context.Context, userID string) (models.Wishlist, error)
	Save(ctx context.Context, list models.Wishlist) error
}

type MongoStorage struct {
	coll *mongo.Collection
}

func NewMongoStorage() *MongoStorage {
	return &MongoStorage{coll: db.WishlistCollection}
}

func (s *MongoStorage) Load(ctx context.Context, userID string) (models.Wishlist, error) {
	var list models.Wishlist
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}, nil
	}
	if err != nil {
		return models.Wishlist{}, err
	}
	if list.Items == nil {
		list.Items = []models.WishlistItem{}
	}
	return list, nil
}

func (s *MongoStorage) Save(ctx context.Context, list models.Wishlist) error {
	list.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"userId": list.UserID}, list, opts)
	return err
}

type MemoryStorage struct {
	mu    sync.Mutex
	lists map[string]models.Wishlist
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{lists: make(map[string]models.Wishlist)}
}

func (s *MemoryStorage) Load(_ context.Context, userID string) (models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if list, ok := s.lists[userID]; ok {
		return list, nil
	}
	return models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}, nil
}

func (s *MemoryStorage) Save(_ context.Context, list models.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list.UpdatedAt = time.Now()
	s.lists[list.UserID] = list
	return nil
}
