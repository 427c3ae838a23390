package constants

// NATS subjects
const (
	SubjectRideCreated = "ride.created"
	SubjectRideUpdated = "ride.updated"
	SubjectRideDeleted = "ride.deleted"

	SubjectBookingCreated = "booking.created"
	SubjectBookingUpdated = "booking.updated"

	SubjectRequestCreated = "request.created"
	SubjectRequestUpdated = "request.updated"
)
