package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"stockroom-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemRepository implements ItemRepository using MongoDB.
type MongoItemRepository struct {
	client     *mongo.Client
	db         *mongo.Database
	collection *mongo.Collection
}

// itemDocument is the persisted shape of an inventory item.
// IDs are server-assigned UUID strings, so a malformed ID in a request
// simply matches no document instead of failing identifier parsing.
type itemDocument struct {
	ID              string    `bson:"_id"`
	ItemName        string    `bson:"itemName"`
	Quantity        int       `bson:"quantity"`
	StorageLocation string    `bson:"storageLocation"`
	Status          string    `bson:"status"`
	Image           string    `bson:"image"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func toDocument(item *model.InventoryItem) itemDocument {
	return itemDocument{
		ID:              item.ID,
		ItemName:        item.ItemName,
		Quantity:        item.Quantity,
		StorageLocation: item.StorageLocation,
		Status:          item.Status,
		Image:           item.Image,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (d itemDocument) toModel() model.InventoryItem {
	return model.InventoryItem{
		ID:              d.ID,
		ItemName:        d.ItemName,
		Quantity:        d.Quantity,
		StorageLocation: d.StorageLocation,
		Status:          d.Status,
		Image:           d.Image,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// NewMongoItemRepository creates a new MongoDB inventory repository.
func NewMongoItemRepository(uri, database, collection string) (*MongoItemRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(database)
	coll := db.Collection(collection)

	// Sort index for newest-first listings.
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	}
	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("[MongoDB] Warning: failed to create index: %v", err)
	}

	log.Printf("[MongoDB] Connected to %s/%s", database, collection)
	return &MongoItemRepository{
		client:     client,
		db:         db,
		collection: coll,
	}, nil
}

// ListItems returns all items, newest first.
func (r *MongoItemRepository) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]model.InventoryItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.toModel()
	}
	return items, nil
}

// GetItem retrieves an item by ID.
func (r *MongoItemRepository) GetItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	var doc itemDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item := doc.toModel()
	return &item, nil
}

// InsertItem persists a new item.
func (r *MongoItemRepository) InsertItem(ctx context.Context, item *model.InventoryItem) error {
	if _, err := r.collection.InsertOne(ctx, toDocument(item)); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// ReplaceItem overwrites the editable fields of an existing item.
func (r *MongoItemRepository) ReplaceItem(ctx context.Context, item *model.InventoryItem) error {
	update := bson.M{
		"$set": bson.M{
			"itemName":        item.ItemName,
			"quantity":        item.Quantity,
			"storageLocation": item.StorageLocation,
			"status":          item.Status,
			"image":           item.Image,
			"updatedAt":       item.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": item.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes an item by ID.
func (r *MongoItemRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns statistics about the inventory collection.
func (r *MongoItemRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	stats["total_items"] = count

	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	var doc itemDocument
	if err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc); err == nil {
		stats["last_update"] = doc.UpdatedAt
	}

	result := r.db.RunCommand(ctx, bson.D{{Key: "collStats", Value: r.collection.Name()}})
	var collStats bson.M
	if err := result.Decode(&collStats); err == nil {
		if size, ok := collStats["size"].(int64); ok {
			stats["db_size_bytes"] = size
		} else if size, ok := collStats["size"].(int32); ok {
			stats["db_size_bytes"] = int64(size)
		}
	}

	return stats, nil
}

// Close closes the MongoDB connection.
func (r *MongoItemRepository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}

var _ ItemRepository = (*MongoItemRepository)(nil)
