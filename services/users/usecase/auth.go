package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	jwtpkg "github.com/unirides/unirides/internal/pkg/jwt"
	"github.com/unirides/unirides/internal/pkg/logger"
	"github.com/unirides/unirides/internal/pkg/models"
	"github.com/unirides/unirides/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Login checks email, password and user type together. Every mismatch is
// reported as models.ErrInvalidCredentials.
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			logger.Info("Login rejected: unknown email", logger.String("email", email))
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.UserType != req.UserType {
		logger.Info("Login rejected: user type mismatch",
			logger.String("user_id", user.ID),
			logger.String("user_type", string(req.UserType)))
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("Login rejected: wrong password", logger.String("user_id", user.ID))
		return nil, models.ErrInvalidCredentials
	}

	return uc.authResponse(user)
}

// Register validates and stores a new account and logs it in
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        utils.NormalizeEmail(req.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		UserType:     req.UserType,
		CreatedAt:    models.Now(),
	}

	switch req.UserType {
	case models.UserTypeStudent:
		user.StudentID = req.StudentID
		user.University = req.University
	case models.UserTypeDriver:
		user.DriverID = req.DriverID
		vehicle := *req.Vehicle
		user.Vehicle = &vehicle
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrUserExists) {
			logger.Info("Registration rejected: email in use", logger.String("email", user.Email))
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID),
		logger.String("user_type", string(user.UserType)))

	return uc.authResponse(user)
}

func (uc *UserUC) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if !req.UserType.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidUserType, req.UserType)
	}

	email := utils.NormalizeEmail(req.Email)
	switch {
	case email == "":
		return fmt.Errorf("%w: email is required", models.ErrValidation)
	case !utils.IsValidEmail(email):
		return fmt.Errorf("%w: email is invalid", models.ErrValidation)
	case len(req.Password) < minPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	case req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone):
		return fmt.Errorf("%w: phone is invalid", models.ErrValidation)
	}

	if req.UserType == models.UserTypeDriver {
		if req.Vehicle == nil || strings.TrimSpace(req.Vehicle.Plate) == "" {
			return fmt.Errorf("%w: vehicle plate is required for drivers", models.ErrValidation)
		}
		if req.Vehicle.Capacity <= 0 {
			return fmt.Errorf("%w: vehicle capacity must be positive", models.ErrValidation)
		}
	}
	return nil
}
