package signaling

import (
	"fmt"
	"sync"

	"signalhub/pkg/protocol"
)

// Handler handles a specific message type
type Handler interface {
	// Handle processes a message from the named client
	Handle(clientID string, msg *protocol.ClientMessage) error
	// MessageType returns the type of message this handler processes
	MessageType() protocol.MessageType
}

// Dispatcher routes inbound messages to the handler for their type
type Dispatcher struct {
	handlers map[protocol.MessageType]Handler
	mu       sync.RWMutex
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[protocol.MessageType]Handler),
	}
}

// Register registers a handler for a message type
func (d *Dispatcher) Register(handler Handler) error {
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	msgType := handler.MessageType()
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.handlers[msgType]; exists {
		return fmt.Errorf("handler already registered for message type: %s", msgType)
	}
	d.handlers[msgType] = handler
	return nil
}

// Dispatch dispatches a message to the appropriate handler
func (d *Dispatcher) Dispatch(clientID string, msg *protocol.ClientMessage) (bool, error) {
	d.mu.RLock()
	handler, exists := d.handlers[msg.Type]
	d.mu.RUnlock()

	if !exists {
		return false, nil
	}
	return true, handler.Handle(clientID, msg)
}

// HasHandler checks if a handler exists for the message type
func (d *Dispatcher) HasHandler(msgType protocol.MessageType) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, exists := d.handlers[msgType]
	return exists
}
