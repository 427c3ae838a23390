package models

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRideNotFound       = errors.New("ride not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRequestNotFound    = errors.New("request not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidUserType    = errors.New("invalid user type")
	ErrValidation         = errors.New("validation failed")
)
