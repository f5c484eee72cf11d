package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockroom-api/internal/model"
	"stockroom-api/pkg/uid"
)

// newTestRepository creates a fresh in-memory SQLite repository.
func newTestRepository(t *testing.T) *SQLiteItemRepository {
	t.Helper()

	repo, err := NewSQLiteItemRepository(":memory:")
	if err != nil {
		t.Fatalf("opening test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	return repo
}

func testItem(name string, createdAt time.Time) *model.InventoryItem {
	return &model.InventoryItem{
		ID:              uid.New(),
		ItemName:        name,
		Quantity:        5,
		StorageLocation: "A1",
		Status:          model.StatusGood,
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}
}

func TestInsertAndGetItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	now := time.Now().UTC()
	item := testItem("Laptop", now)
	if err := repo.InsertItem(ctx, item); err != nil {
		t.Fatalf("InsertItem: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.ItemName != "Laptop" {
		t.Errorf("expected name 'Laptop', got %q", got.ItemName)
	}
	if got.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", got.Quantity)
	}
	if !got.CreatedAt.Equal(item.CreatedAt) {
		t.Errorf("expected createdAt %v, got %v", item.CreatedAt, got.CreatedAt)
	}
}

func TestGetItemNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetItem(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// A malformed identifier behaves the same as an unknown one.
	_, err = repo.GetItem(context.Background(), "!!! definitely not a uuid !!!")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for malformed id, got %v", err)
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	base := time.Now().UTC()
	names := []string{"First", "Second", "Third"}
	for i, name := range names {
		if err := repo.InsertItem(ctx, testItem(name, base.Add(time.Duration(i)*time.Second))); err != nil {
			t.Fatalf("InsertItem %q: %v", name, err)
		}
	}

	items, err := repo.ListItems(ctx)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	want := []string{"Third", "Second", "First"}
	for i, name := range want {
		if items[i].ItemName != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].ItemName)
		}
	}
}

func TestReplaceItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := testItem("Widget", time.Now().UTC())
	if err := repo.InsertItem(ctx, item); err != nil {
		t.Fatalf("InsertItem: %v", err)
	}

	item.Quantity = 0
	item.Status = model.StatusOutOfStock
	item.UpdatedAt = item.UpdatedAt.Add(time.Minute)
	if err := repo.ReplaceItem(ctx, item); err != nil {
		t.Fatalf("ReplaceItem: %v", err)
	}

	got, err := repo.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.Quantity != 0 || got.Status != model.StatusOutOfStock {
		t.Errorf("expected replaced fields, got quantity=%d status=%q", got.Quantity, got.Status)
	}
	if !got.CreatedAt.Equal(item.CreatedAt) {
		t.Errorf("createdAt changed on replace: %v != %v", got.CreatedAt, item.CreatedAt)
	}
}

func TestReplaceItemNotFound(t *testing.T) {
	repo := newTestRepository(t)

	item := testItem("Ghost", time.Now().UTC())
	err := repo.ReplaceItem(context.Background(), item)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := testItem("Delete Me", time.Now().UTC())
	if err := repo.InsertItem(ctx, item); err != nil {
		t.Fatalf("InsertItem: %v", err)
	}

	if err := repo.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	_, err := repo.GetItem(ctx, item.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.DeleteItem(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.InsertItem(ctx, testItem("One", time.Now().UTC()))
	repo.InsertItem(ctx, testItem("Two", time.Now().UTC()))

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if count, ok := stats["total_items"].(int64); !ok || count != 2 {
		t.Errorf("expected total_items 2, got %v", stats["total_items"])
	}
}
