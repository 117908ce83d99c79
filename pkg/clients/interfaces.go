package clients

import "github.com/gorilla/websocket"

// Client represents a connected peer with messaging capability
type Client interface {
	// ID returns the client ID
	ID() string
	// Conn returns the WebSocket connection
	Conn() *websocket.Conn
	// Send queues a message for delivery to the client without blocking
	Send(msg any) error
	// Close tears down the connection; safe to call more than once
	Close() error
	// IsClosed checks if the client is closed
	IsClosed() bool
}

// Manager is the connection registry: the single source of truth for
// which clients are reachable right now
type Manager interface {
	// Register registers a newly connected client, rejecting duplicates
	Register(clientID string, conn *websocket.Conn) (Client, error)
	// Unregister removes a client if present and closes it; no-op otherwise
	Unregister(clientID string)
	// Get retrieves a client by ID
	Get(clientID string) (Client, bool)
	// SendTo delivers a message to a registered client
	SendTo(clientID string, msg any) error
	// Has reports whether a client ID is currently registered
	Has(clientID string) bool
	// Count returns the number of connected clients
	Count() int
	// Shutdown closes every registered client
	Shutdown()
}
