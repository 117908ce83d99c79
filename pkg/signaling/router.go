package signaling

import (
	"encoding/json"
	"fmt"

	errs "signalhub/pkg/errors"
	"signalhub/pkg/logger"
	"signalhub/pkg/protocol"
	"signalhub/pkg/rooms"
)

// Router validates inbound frames and dispatches them by message type.
// It is stateless between messages; all shared state lives in the
// registry and the room table.
type Router struct {
	dispatcher  *Dispatcher
	coordinator *Coordinator
	log         *logger.Logger
}

// NewRouter wires the dispatcher, the disconnect coordinator, and the
// built-in handlers for the five protocol message types.
func NewRouter(registry Registry, tbl *rooms.Table) *Router {
	log := logger.Get().With("component", "signaling")
	coordinator := NewCoordinator(registry, tbl)

	d := NewDispatcher()
	handlers := []Handler{
		&joinHandler{registry: registry, rooms: tbl, log: log},
		&forwardHandler{registry: registry, msgType: protocol.MsgTypeOffer, log: log},
		&forwardHandler{registry: registry, msgType: protocol.MsgTypeAnswer, log: log},
		&forwardHandler{registry: registry, msgType: protocol.MsgTypeICECandidate, log: log},
		&leaveHandler{coordinator: coordinator},
	}
	for _, h := range handlers {
		if err := d.Register(h); err != nil {
			// Registration only fails on duplicate built-ins
			panic(err)
		}
	}

	return &Router{
		dispatcher:  d,
		coordinator: coordinator,
		log:         log,
	}
}

// Dispatch parses a raw text frame from the named client and routes it.
// A frame that is not a JSON object is rejected with ErrInvalidMessage
// and a handler rejection is returned as-is; in both cases the caller
// keeps the connection open. An unrecognized or missing type is a no-op.
func (r *Router) Dispatch(clientID string, raw []byte) error {
	var msg protocol.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidMessage, err)
	}

	handled, err := r.dispatcher.Dispatch(clientID, &msg)
	if !handled {
		r.log.DebugWith("unhandled message type", "client", clientID, "type", string(msg.Type))
		return nil
	}
	return err
}

// Disconnect runs the cleanup path for a client. Safe to call from every
// exit route; repeated invocations are no-ops.
func (r *Router) Disconnect(clientID string) {
	r.coordinator.Disconnect(clientID)
}
