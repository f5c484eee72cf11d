package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"stockroom-api/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteItemRepository implements ItemRepository using SQLite.
// Used as the embedded backend for development and tests.
type SQLiteItemRepository struct {
	db *sql.DB
}

// NewSQLiteItemRepository creates a new SQLite inventory repository.
// dbPath is the path to the database file, or ":memory:" for an
// in-memory database.
func NewSQLiteItemRepository(dbPath string) (*SQLiteItemRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports one writer; a single shared connection also
	// keeps an in-memory database alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", p, err)
		}
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteItemRepository] Initialized with database: %s", dbPath)
	return &SQLiteItemRepository{db: db}, nil
}

func createTables(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS inventory_items (
		id TEXT PRIMARY KEY,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		storage_location TEXT NOT NULL,
		status TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_inventory_created_at ON inventory_items(created_at);
	`
	_, err := db.Exec(query)
	return err
}

// Timestamps are stored as fixed-width UTC text so that lexicographic
// ordering matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

func scanItem(scan func(dest ...any) error) (*model.InventoryItem, error) {
	var item model.InventoryItem
	var createdAt, updatedAt string
	if err := scan(&item.ID, &item.ItemName, &item.Quantity, &item.StorageLocation,
		&item.Status, &item.Image, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	item.CreatedAt = decodeTime(createdAt)
	item.UpdatedAt = decodeTime(updatedAt)
	return &item, nil
}

// ListItems returns all items, newest first.
func (r *SQLiteItemRepository) ListItems(ctx context.Context) ([]model.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_name, quantity, storage_location, status, image, created_at, updated_at
		FROM inventory_items
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// GetItem retrieves an item by ID.
func (r *SQLiteItemRepository) GetItem(ctx context.Context, id string) (*model.InventoryItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, item_name, quantity, storage_location, status, image, created_at, updated_at
		FROM inventory_items WHERE id = ?`, id)

	item, err := scanItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// InsertItem persists a new item.
func (r *SQLiteItemRepository) InsertItem(ctx context.Context, item *model.InventoryItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_items (id, item_name, quantity, storage_location, status, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ItemName, item.Quantity, item.StorageLocation,
		item.Status, item.Image, encodeTime(item.CreatedAt), encodeTime(item.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// ReplaceItem overwrites the editable fields of an existing item.
func (r *SQLiteItemRepository) ReplaceItem(ctx context.Context, item *model.InventoryItem) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE inventory_items
		SET item_name = ?, quantity = ?, storage_location = ?, status = ?, image = ?, updated_at = ?
		WHERE id = ?`,
		item.ItemName, item.Quantity, item.StorageLocation, item.Status,
		item.Image, encodeTime(item.UpdatedAt), item.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes an item by ID.
func (r *SQLiteItemRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns statistics about the inventory database.
func (r *SQLiteItemRepository) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inventory_items").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_items"] = count

	var lastUpdate sql.NullString
	if err := r.db.QueryRowContext(ctx, "SELECT MAX(updated_at) FROM inventory_items").Scan(&lastUpdate); err == nil && lastUpdate.Valid {
		stats["last_update"] = decodeTime(lastUpdate.String)
	}

	var pageCount, pageSize int64
	r.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	r.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
	stats["db_size_bytes"] = pageCount * pageSize

	return stats, nil
}

// Close closes the database connection.
func (r *SQLiteItemRepository) Close() error {
	return r.db.Close()
}

var _ ItemRepository = (*SQLiteItemRepository)(nil)
