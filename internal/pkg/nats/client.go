package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Publisher is the subset of the client the gateways need
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server at url
func NewClient(url, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Close drains pending messages and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
	}
}

// NopPublisher drops every message. Used when no NATS URL is configured.
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(string, []byte) error { return nil }
