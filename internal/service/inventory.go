package service

import (
	"context"
	"errors"
	"time"

	"stockroom-api/internal/model"
	"stockroom-api/internal/repository"
	"stockroom-api/pkg/apierror"
	"stockroom-api/pkg/uid"
)

// InventoryService handles inventory business logic. Every mutation writes
// through to the store synchronously; no cache sits between the two.
type InventoryService struct {
	repo repository.ItemRepository
}

// NewInventoryService creates a new inventory service.
// Returns nil if repo is nil (required dependency).
func NewInventoryService(repo repository.ItemRepository) *InventoryService {
	if repo == nil {
		return nil
	}
	return &InventoryService{repo: repo}
}

// List returns all items, newest first.
func (s *InventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	return items, nil
}

// Get returns the item with the given ID.
func (s *InventoryService) Get(ctx context.Context, id string) (*model.InventoryItem, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

// Create validates the payload and persists a new item. The store assigns
// the ID and both timestamps; any id or timestamps in the payload are ignored.
func (s *InventoryService) Create(ctx context.Context, in model.ItemInput) (*model.InventoryItem, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apierror.Validation(err.Error())
	}

	now := time.Now().UTC()
	item := &model.InventoryItem{
		ID:              uid.New(),
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		StorageLocation: in.StorageLocation,
		Status:          in.Status,
		Image:           in.Image,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.InsertItem(ctx, item); err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

// Update replaces all five editable fields of an existing item wholesale
// and refreshes UpdatedAt. Partial updates are not supported.
func (s *InventoryService) Update(ctx context.Context, id string, in model.ItemInput) (*model.InventoryItem, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, apierror.Validation(err.Error())
	}

	current, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	item := &model.InventoryItem{
		ID:              current.ID,
		ItemName:        in.ItemName,
		Quantity:        in.Quantity,
		StorageLocation: in.StorageLocation,
		Status:          in.Status,
		Image:           in.Image,
		CreatedAt:       current.CreatedAt,
		UpdatedAt:       time.Now().UTC(),
	}

	if err := s.repo.ReplaceItem(ctx, item); err != nil {
		return nil, storeError(err)
	}
	return item, nil
}

// Delete removes the item with the given ID.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return storeError(err)
	}
	return nil
}

// storeError translates store-layer failures into API errors. Nothing
// propagates to the transport layer as an unhandled fault.
func storeError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apierror.NotFound("Item not found")
	}
	return apierror.ServerError(err.Error())
}
