package mq

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"techzone/db"
	"techzone/models"
	"techzone/rdx"
	"techzone/search"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const indexChannel = "index-events"

// Emit publishes an indexing event to Redis. Best-effort: a failed
// publish is logged and never fails the request that triggered it.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, indexChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartIndexingWorker consumes catalog events and keeps the
// autocomplete index in sync. Runs for the life of the process.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, indexChannel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for index events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}
		if event.EntityType != "product" {
			continue
		}

		if err := indexProductEvent(ctx, event); err != nil {
			log.Printf("[IndexingWorker] index error: %v", err)
		}
	}
}

func indexProductEvent(ctx context.Context, event models.Index) error {
	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": event.EntityId}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Deleted before the worker got to it; nothing to index.
		return nil
	}
	if err != nil {
		return err
	}

	if event.Method == "DELETE" {
		return search.UnindexProduct(ctx, product.Slug)
	}
	return search.IndexProduct(ctx, product.Name, product.Slug)
}
