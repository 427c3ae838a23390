package repository

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/memstore"
	"github.com/unirides/unirides/internal/pkg/models"
)

// MemoryUserRepo keeps users in the shared in-process store
type MemoryUserRepo struct {
	store *memstore.Store
}

// NewMemoryUserRepo creates a user repository over store
func NewMemoryUserRepo(store *memstore.Store) *MemoryUserRepo {
	return &MemoryUserRepo{store: store}
}

// CreateUser stores user unless its email is already registered
func (r *MemoryUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.store.Update(func(tx *memstore.Tx) error {
		if _, exists := tx.UserByEmail(user.Email); exists {
			return models.ErrUserExists
		}
		tx.PutUser(user)
		return nil
	})
}

// GetUserByEmail finds a user by email, ignoring case
func (r *MemoryUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.store.View(func(tx *memstore.Tx) error {
		u, ok := tx.UserByEmail(email)
		if !ok {
			return models.ErrUserNotFound
		}
		user = u
		return nil
	})
	return user, err
}

// GetUserByID finds a user by id
func (r *MemoryUserRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user *models.User
	err := r.store.View(func(tx *memstore.Tx) error {
		u, ok := tx.User(id)
		if !ok {
			return models.ErrUserNotFound
		}
		user = u
		return nil
	})
	return user, err
}
