package constants

// Redis key formats
const (
	KeyUserLocation = "user:location:%s" // Format: user:location:{user_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "accuracy"
	FieldTimestamp = "ts"
)
