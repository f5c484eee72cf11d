package repository

import (
	"context"
	"database/sql"
	"fmt"

	"stockroom-api/internal/model"
)

// MySQLAccessKeyRepository implements AccessKeyRepository using MySQL.
// The table holds access keys handed out to clients; the server runs
// without it when MySQL is not configured.
type MySQLAccessKeyRepository struct {
	db *sql.DB
}

// NewMySQLAccessKeyRepository creates a new MySQL access-key repository.
func NewMySQLAccessKeyRepository(db *sql.DB) *MySQLAccessKeyRepository {
	return &MySQLAccessKeyRepository{db: db}
}

// ValidateKey returns the access key record for key if it exists and is active.
func (r *MySQLAccessKeyRepository) ValidateKey(ctx context.Context, key string) (*model.AccessKey, error) {
	query := `SELECT id, access_key, label FROM access_keys WHERE access_key = ? AND is_active = 1 LIMIT 1`

	var result model.AccessKey
	err := r.db.QueryRowContext(ctx, query, key).Scan(&result.ID, &result.Key, &result.Label)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to validate access key: %w", err)
	}

	return &result, nil
}

var _ AccessKeyRepository = (*MySQLAccessKeyRepository)(nil)
