package constants

// Echo context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
)
