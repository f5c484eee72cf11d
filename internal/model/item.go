package model

import (
	"fmt"
	"strings"
	"time"
)

// Item statuses. Any status may follow any other; no transitions are enforced.
const (
	StatusGood       = "Good"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
	StatusExpired    = "Expired"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch s {
	case StatusGood, StatusLowStock, StatusOutOfStock, StatusExpired:
		return true
	}
	return false
}

// InventoryItem is a persisted inventory record.
// ID, CreatedAt and UpdatedAt are assigned by the server and immutable
// for the client (UpdatedAt is refreshed on every mutation).
type InventoryItem struct {
	ID              string    `json:"id"`
	ItemName        string    `json:"itemName"`
	Quantity        int       `json:"quantity"`
	StorageLocation string    `json:"storageLocation"`
	Status          string    `json:"status"`
	Image           string    `json:"image"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ItemInput is the typed write payload for create and update.
// Updates replace all five fields wholesale: a field omitted from the request
// body decodes to its default below, it is never merged with the stored value.
type ItemInput struct {
	ItemName        string `json:"itemName"`
	Quantity        int    `json:"quantity"`
	StorageLocation string `json:"storageLocation"`
	Status          string `json:"status"`
	Image           string `json:"image"`
}

// Normalize trims the item name and applies payload defaults.
func (in *ItemInput) Normalize() {
	in.ItemName = strings.TrimSpace(in.ItemName)
	if in.Status == "" {
		in.Status = StatusGood
	}
}

// Validate checks the payload against the data-model invariants.
// Callers must Normalize first.
func (in *ItemInput) Validate() error {
	if in.ItemName == "" {
		return fmt.Errorf("itemName is required")
	}
	if in.StorageLocation == "" {
		return fmt.Errorf("storageLocation is required")
	}
	if in.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if !ValidStatus(in.Status) {
		return fmt.Errorf("status must be one of: %s, %s, %s, %s",
			StatusGood, StatusLowStock, StatusOutOfStock, StatusExpired)
	}
	return nil
}
