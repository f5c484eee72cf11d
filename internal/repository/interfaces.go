package repository

import (
	"context"
	"errors"

	"stockroom-api/internal/model"
)

// ErrNotFound indicates the identifier does not resolve to an existing record.
var ErrNotFound = errors.New("inventory item not found")

// ItemRepository defines inventory data access methods.
type ItemRepository interface {
	// ListItems returns all items ordered by creation time, most recent first.
	ListItems(ctx context.Context) ([]model.InventoryItem, error)

	// GetItem retrieves an item by ID. Returns ErrNotFound if absent.
	GetItem(ctx context.Context, id string) (*model.InventoryItem, error)

	// InsertItem persists a new item. All fields including ID and timestamps
	// must already be set by the caller.
	InsertItem(ctx context.Context, item *model.InventoryItem) error

	// ReplaceItem overwrites the editable fields and UpdatedAt of the item
	// matching item.ID. Returns ErrNotFound if absent.
	ReplaceItem(ctx context.Context, item *model.InventoryItem) error

	// DeleteItem removes an item by ID. Returns ErrNotFound if absent.
	DeleteItem(ctx context.Context, id string) error

	// Stats returns statistics about the inventory store.
	Stats(ctx context.Context) (map[string]interface{}, error)

	// Close closes the repository connection.
	Close() error
}

// AccessKeyRepository defines access-key lookup for token issuance.
type AccessKeyRepository interface {
	// ValidateKey returns the access key record for key, or ErrNotFound.
	ValidateKey(ctx context.Context, key string) (*model.AccessKey, error)
}
