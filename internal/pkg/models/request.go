package models

import (
	"time"
)

// RequestStatus represents the status of a ride request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Valid reports whether s is a known request status
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// Request is a passenger asking a driver for a seat on a ride
type Request struct {
	ID             string        `json:"id"`
	RideID         string        `json:"ride_id"`
	PassengerID    string        `json:"passenger_id"`
	PassengerName  string        `json:"passenger_name"`
	PassengerPhone string        `json:"passenger_phone"`
	DriverID       string        `json:"driver_id"`
	DriverName     string        `json:"driver_name"`
	Route          Route         `json:"route"`
	DepartureTime  time.Time     `json:"departure_time"`
	Price          float64       `json:"price"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// RequestUpdate lists the request fields that may change after creation
type RequestUpdate struct {
	Status        *RequestStatus `json:"status,omitempty"`
	PickupAddress *string        `json:"pickup_address,omitempty"`
}

// CanTransition reports whether a request in status s may move to next.
// Only pending requests change status; accepted, rejected and cancelled
// are terminal.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	return s == RequestStatusPending && next.Valid()
}

// Apply merges u into r. Callers check the transition beforehand.
func (r *Request) Apply(u RequestUpdate) {
	if u.Status != nil {
		r.Status = *u.Status
	}
	if u.PickupAddress != nil {
		r.Route.PickupAddress = *u.PickupAddress
	}
}

// Accepts reports whether the update moves the request to accepted
func (u RequestUpdate) Accepts() bool {
	return u.Status != nil && *u.Status == RequestStatusAccepted
}

// BookingFromRequest builds the booking created when a request is accepted
func BookingFromRequest(r *Request) *Booking {
	return &Booking{
		RideID:         r.RideID,
		RequestID:      r.ID,
		PassengerID:    r.PassengerID,
		PassengerName:  r.PassengerName,
		PassengerPhone: r.PassengerPhone,
		DriverID:       r.DriverID,
		DriverName:     r.DriverName,
		Route:          r.Route,
		DepartureTime:  r.DepartureTime,
		Price:          r.Price,
	}
}
