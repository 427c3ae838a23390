package models

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a seat reservation on a ride
type Booking struct {
	ID             string        `json:"id"`
	RideID         string        `json:"ride_id"`
	RequestID      string        `json:"request_id,omitempty"`
	PassengerID    string        `json:"passenger_id"`
	PassengerName  string        `json:"passenger_name"`
	PassengerPhone string        `json:"passenger_phone"`
	DriverID       string        `json:"driver_id"`
	DriverName     string        `json:"driver_name"`
	Route          Route         `json:"route"`
	DepartureTime  time.Time     `json:"departure_time"`
	Price          float64       `json:"price"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// BookingUpdate lists the booking fields that may change after creation
type BookingUpdate struct {
	Status *BookingStatus `json:"status,omitempty"`
}

// Apply merges u into b
func (b *Booking) Apply(u BookingUpdate) {
	if u.Status != nil {
		b.Status = *u.Status
	}
}
