// Package store persists the lab request collection as a single unit.
// Every backend follows the same contract: Load returns the whole
// collection, Save overwrites it in full. There are no partial updates.
package store

import (
	"context"

	"github.com/SuchitArtal/virtual-lab/internal/models"
)

// Store is the persistence interface for the request collection.
type Store interface {
	// Load reads the entire collection, initializing empty storage on
	// first use if none exists yet.
	Load(ctx context.Context) ([]models.LabRequest, error)
	// Save atomically overwrites durable storage with the full collection.
	Save(ctx context.Context, requests []models.LabRequest) error
}
