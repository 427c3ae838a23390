package repository

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
)

// MemoryLocationRepo keeps locations in the shared in-process store. Used
// when no Redis is configured; entries do not expire.
type MemoryLocationRepo struct {
	store *memstore.Store
}

// NewMemoryLocationRepo creates a location repository over store
func NewMemoryLocationRepo(store *memstore.Store) *MemoryLocationRepo {
	return &MemoryLocationRepo{store: store}
}

// StoreLocation stores the location of a user
func (r *MemoryLocationRepo) StoreLocation(ctx context.Context, userID string, loc models.Location) error {
	return r.store.Update(func(tx *memstore.Tx) error {
		tx.PutLocation(userID, loc)
		return nil
	})
}

// GetLastLocation returns the stored location of a user
func (r *MemoryLocationRepo) GetLastLocation(ctx context.Context, userID string) (*models.Location, error) {
	var loc *models.Location
	err := r.store.View(func(tx *memstore.Tx) error {
		if found, ok := tx.Location(userID); ok {
			loc = &found
		}
		return nil
	})
	return loc, err
}
