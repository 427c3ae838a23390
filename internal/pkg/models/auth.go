package models

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	UserType UserType `json:"user_type"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	UserType   UserType `json:"user_type"`
	StudentID  string   `json:"student_id,omitempty"`
	University string   `json:"university,omitempty"`
	DriverID   string   `json:"driver_id,omitempty"`
	Vehicle    *Vehicle `json:"vehicle,omitempty"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
