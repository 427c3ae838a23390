package usecase

import (
	"context"

	"github.com/unirides/unirides/internal/pkg/models"
)

// GetUserByID returns the account with id
func (uc *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}
