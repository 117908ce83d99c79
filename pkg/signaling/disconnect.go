package signaling

import (
	"signalhub/pkg/logger"
	"signalhub/pkg/protocol"
	"signalhub/pkg/rooms"
)

// Coordinator is the single cleanup path for every exit route: explicit
// leave, transport-level disconnect, and stream errors all end here.
type Coordinator struct {
	registry Registry
	rooms    *rooms.Table
	log      *logger.Logger
}

// NewCoordinator creates a disconnect coordinator over the given tables
func NewCoordinator(registry Registry, tbl *rooms.Table) *Coordinator {
	return &Coordinator{
		registry: registry,
		rooms:    tbl,
		log:      logger.Get().With("component", "signaling"),
	}
}

// Disconnect removes the client from the registry and from every room it
// belongs to, then notifies the remaining members of each affected room.
// It cannot fail and is safe to invoke more than once per client: the
// second call finds nothing to remove and nobody to notify.
func (c *Coordinator) Disconnect(clientID string) {
	c.registry.Unregister(clientID)

	affected := c.rooms.RemoveClient(clientID)
	for roomID, remaining := range affected {
		for _, peer := range remaining {
			// Notification failures are discarded, never retried
			if err := c.registry.SendTo(peer, protocol.NewUserLeft(clientID)); err != nil {
				c.log.DebugWith("leave notification dropped", "room", roomID, "peer", peer, "error", err)
			}
		}
		if len(remaining) == 0 {
			c.log.InfoWith("room closed", "room", roomID)
		}
	}

	if len(affected) > 0 {
		c.log.InfoWith("client cleanup complete", "client", clientID, "rooms", len(affected))
	}
}
