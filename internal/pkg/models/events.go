package models

import "time"

// Event is the envelope published for every store change
type Event struct {
	Type       string      `json:"type"`
	EntityID   string      `json:"entity_id"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
