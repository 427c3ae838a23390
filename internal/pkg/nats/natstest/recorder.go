// Package natstest provides an in-memory publisher for gateway tests.
package natstest

import (
	"encoding/json"
	"sync"

	"github.com/unirides/unirides/internal/pkg/models"
)

// Message is one recorded publish
type Message struct {
	Subject string
	Data    []byte
}

// Recorder implements nats.Publisher and keeps every message
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

// Publish records the message, or returns Err when set
func (r *Recorder) Publish(subject string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Message{Subject: subject, Data: data})
	return nil
}

// Messages returns a copy of the recorded messages
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Event decodes message i as a models.Event with its payload left raw
func (r *Recorder) Event(i int) (models.Event, json.RawMessage, error) {
	msgs := r.Messages()
	var envelope struct {
		models.Event
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(msgs[i].Data, &envelope); err != nil {
		return models.Event{}, nil, err
	}
	return envelope.Event, envelope.Payload, nil
}
