package models

// RouteRequest is the payload for a route estimate
type RouteRequest struct {
	From Coordinates `json:"from"`
	To   Coordinates `json:"to"`
}

// RouteEstimate is a straight-line route between two points
type RouteEstimate struct {
	Distance    float64       `json:"distance"` // kilometers
	Duration    float64       `json:"duration"` // minutes
	Coordinates []Coordinates `json:"coordinates"`
}
