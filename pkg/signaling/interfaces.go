package signaling

// Registry is the view of the connection registry the router needs.
// *clients.ManagerImpl satisfies it.
type Registry interface {
	// SendTo delivers a message to a registered client
	SendTo(clientID string, msg any) error
	// Unregister removes a client if present; no-op otherwise
	Unregister(clientID string)
	// Has reports whether a client ID is currently registered
	Has(clientID string) bool
}
