package usecase

import (
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/services/users"
)

const minPasswordLength = 6

// UserUC implements users.UserUC
type UserUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}
