package users

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unirides/unirides/services/users UserUC

// UserUC handles account registration and login
type UserUC interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
