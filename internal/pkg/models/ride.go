package models

import (
	"fmt"
	"time"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusAvailable RideStatus = "available"
	RideStatusFull      RideStatus = "full"
)

// Coordinates is a plain lat/lng pair used by routes
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route describes where a ride goes
type Route struct {
	From          string      `json:"from"`
	To            string      `json:"to"`
	FromCoords    Coordinates `json:"from_coords"`
	ToCoords      Coordinates `json:"to_coords"`
	PickupAddress string      `json:"pickup_address,omitempty"`
}

// Ride represents a trip offered by a driver
type Ride struct {
	ID             string     `json:"id" db:"id"`
	DriverID       string     `json:"driver_id" db:"driver_id"`
	DriverName     string     `json:"driver_name" db:"driver_name"`
	Vehicle        Vehicle    `json:"vehicle" db:"-"`
	Route          Route      `json:"route" db:"-"`
	FromGeohash    string     `json:"from_geohash" db:"from_geohash"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	Price          float64    `json:"price" db:"price"`
	Status         RideStatus `json:"status" db:"status"`
	Passengers     []string   `json:"passengers" db:"-"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// RideUpdate lists the ride fields a driver may change. Nil fields are
// left untouched.
type RideUpdate struct {
	DepartureTime  *time.Time  `json:"departure_time,omitempty"`
	AvailableSeats *int        `json:"available_seats,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	Route          *Route      `json:"route,omitempty"`
	Status         *RideStatus `json:"status,omitempty"`
}

// RideFilter narrows GetAvailableRides
type RideFilter struct {
	Near *Coordinates
}

// ReserveSeat takes one seat for passengerID. Seats never go below zero
// and the ride flips to full once none remain. It returns false when the
// ride had no seat left before the call.
func (r *Ride) ReserveSeat(passengerID string) bool {
	hadSeat := r.AvailableSeats > 0
	r.AvailableSeats--
	r.Passengers = append(r.Passengers, passengerID)
	if r.AvailableSeats <= 0 {
		r.AvailableSeats = 0
		r.Status = RideStatusFull
	}
	return hadSeat
}

// Apply merges u into r. The status always follows the resulting seat
// count; an explicit status that disagrees with it is rejected and r is
// left untouched.
func (r *Ride) Apply(u RideUpdate) error {
	seats := r.AvailableSeats
	if u.AvailableSeats != nil {
		seats = *u.AvailableSeats
	}
	status := StatusForSeats(seats)
	if u.Status != nil && *u.Status != status {
		return fmt.Errorf("%w: status %q does not match %d available seats", ErrValidation, *u.Status, seats)
	}

	if u.DepartureTime != nil {
		r.DepartureTime = *u.DepartureTime
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.Route != nil {
		r.Route = *u.Route
	}
	r.AvailableSeats = seats
	r.Status = status
	return nil
}

// StatusForSeats is full at zero seats and available otherwise
func StatusForSeats(seats int) RideStatus {
	if seats <= 0 {
		return RideStatusFull
	}
	return RideStatusAvailable
}
