package repository

import (
	"context"
	"sort"

	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
)

// MemoryRideRepo keeps rides in the shared in-process store
type MemoryRideRepo struct {
	store *memstore.Store
}

// NewMemoryRideRepo creates a ride repository over store
func NewMemoryRideRepo(store *memstore.Store) *MemoryRideRepo {
	return &MemoryRideRepo{store: store}
}

// ListAvailableRides returns available rides by departure time
func (r *MemoryRideRepo) ListAvailableRides(ctx context.Context, cells []string) ([]*models.Ride, error) {
	inCells := make(map[string]bool, len(cells))
	for _, c := range cells {
		inCells[c] = true
	}

	out := make([]*models.Ride, 0)
	err := r.store.View(func(tx *memstore.Tx) error {
		for _, ride := range tx.Rides() {
			if ride.Status != models.RideStatusAvailable {
				continue
			}
			if len(inCells) > 0 && !inCells[ride.FromGeohash] {
				continue
			}
			out = append(out, ride)
		}
		return nil
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureTime.Before(out[j].DepartureTime)
	})
	return out, err
}

// CreateRide stores a new ride
func (r *MemoryRideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	return r.store.Update(func(tx *memstore.Tx) error {
		tx.PutRide(ride)
		return nil
	})
}

// GetRide finds a ride by id
func (r *MemoryRideRepo) GetRide(ctx context.Context, id string) (*models.Ride, error) {
	var ride *models.Ride
	err := r.store.View(func(tx *memstore.Tx) error {
		found, ok := tx.Ride(id)
		if !ok {
			return models.ErrRideNotFound
		}
		ride = found
		return nil
	})
	return ride, err
}

// UpdateRide changes a ride under the store lock
func (r *MemoryRideRepo) UpdateRide(ctx context.Context, id string, apply func(*models.Ride) error) (*models.Ride, error) {
	var ride *models.Ride
	err := r.store.Update(func(tx *memstore.Tx) error {
		found, ok := tx.Ride(id)
		if !ok {
			return models.ErrRideNotFound
		}
		if err := apply(found); err != nil {
			return err
		}
		found.ID = id
		tx.PutRide(found)
		ride = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ride, nil
}

// DeleteRide removes a ride
func (r *MemoryRideRepo) DeleteRide(ctx context.Context, id string) error {
	return r.store.Update(func(tx *memstore.Tx) error {
		if !tx.DeleteRide(id) {
			return models.ErrRideNotFound
		}
		return nil
	})
}
