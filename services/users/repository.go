package users

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unirides/unirides/services/users UserRepo

// UserRepo stores accounts. Emails are stored normalized.
type UserRepo interface {
	// CreateUser fails with models.ErrUserExists when the email is taken
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
