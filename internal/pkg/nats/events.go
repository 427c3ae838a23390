package nats

import (
	"encoding/json"
	"fmt"

	"github.com/unirides/unirides/internal/pkg/models"
)

// PublishEvent wraps payload in a models.Event and publishes it as JSON
func PublishEvent(p Publisher, subject, entityID string, payload interface{}) error {
	data, err := json.Marshal(models.Event{
		Type:       subject,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: models.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	return p.Publish(subject, data)
}
