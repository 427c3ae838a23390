package models

import (
	"time"
)

// UserType distinguishes the two kinds of accounts
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeDriver  UserType = "driver"
)

// Valid reports whether t is a known user type
func (t UserType) Valid() bool {
	return t == UserTypeStudent || t == UserTypeDriver
}

// User represents an account in the system (either student or driver).
// Student-only and driver-only fields are left empty for the other type.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	UserType     UserType  `json:"user_type" db:"user_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Student fields
	StudentID  string `json:"student_id,omitempty" db:"student_id"`
	University string `json:"university,omitempty" db:"university"`

	// Driver fields
	DriverID string   `json:"driver_id,omitempty" db:"driver_id"`
	Vehicle  *Vehicle `json:"vehicle,omitempty" db:"-"`
}

// Vehicle describes the car a driver offers seats in
type Vehicle struct {
	Model    string `json:"model" db:"vehicle_model"`
	Plate    string `json:"plate" db:"vehicle_plate"`
	Color    string `json:"color" db:"vehicle_color"`
	Capacity int    `json:"capacity" db:"vehicle_capacity"`
}

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"lat" db:"latitude"`
	Longitude float64   `json:"lng" db:"longitude"`
	Accuracy  float64   `json:"accuracy,omitempty" db:"accuracy"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}
