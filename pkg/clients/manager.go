package clients

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	errs "signalhub/pkg/errors"
	"signalhub/pkg/logger"
)

// Options control per-client transport behavior
type Options struct {
	// SendBuffer is the outbound message buffer size per client
	SendBuffer int
	// WriteWait bounds each socket write
	WriteWait time.Duration
	// PingPeriod is the keepalive ping interval. Must be shorter than the
	// read side's pong wait.
	PingPeriod time.Duration
}

// DefaultOptions returns transport defaults matching the server config
func DefaultOptions() Options {
	return Options{
		SendBuffer: 256,
		WriteWait:  10 * time.Second,
		PingPeriod: 54 * time.Second,
	}
}

// ClientImpl wraps a single websocket connection
type ClientImpl struct {
	id   string
	conn *websocket.Conn
	send chan any

	done     chan struct{}
	doneOnce sync.Once
}

// ID returns the client ID
func (c *ClientImpl) ID() string {
	return c.id
}

// Conn returns the WebSocket connection
func (c *ClientImpl) Conn() *websocket.Conn {
	return c.conn
}

// Send queues a message for delivery. It never blocks: a closed client
// yields ErrClientClosed and a full buffer yields ErrSendBufferFull, so a
// slow peer cannot stall the caller's broadcast loop.
func (c *ClientImpl) Send(msg any) error {
	select {
	case <-c.done:
		return fmt.Errorf("%w: %s", errs.ErrClientClosed, c.id)
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.done:
		return fmt.Errorf("%w: %s", errs.ErrClientClosed, c.id)
	default:
		return fmt.Errorf("%w: %s", errs.ErrSendBufferFull, c.id)
	}
}

// Close tears down the connection and stops the write pump
func (c *ClientImpl) Close() error {
	var err error
	c.doneOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// IsClosed checks if the client is closed
func (c *ClientImpl) IsClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// writePump drains the send buffer onto the socket and emits keepalive
// pings. It is the only writer on the connection.
func (c *ClientImpl) writePump(opts Options) {
	ticker := time.NewTicker(opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(opts.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// ManagerImpl manages all connected clients
type ManagerImpl struct {
	clients map[string]*ClientImpl
	opts    Options
	mu      sync.RWMutex
	log     *logger.Logger
}

// NewManager creates a new connection registry
func NewManager(opts Options) *ManagerImpl {
	return &ManagerImpl{
		clients: make(map[string]*ClientImpl),
		opts:    opts,
		log:     logger.Get().With("component", "clients"),
	}
}

// Register registers a newly connected client and starts its write pump.
// A second connection announcing an already registered ID is rejected
// with ErrDuplicateClient rather than silently replacing the first.
func (m *ManagerImpl) Register(clientID string, conn *websocket.Conn) (Client, error) {
	if conn == nil {
		return nil, fmt.Errorf("connection cannot be nil")
	}

	client := &ClientImpl{
		id:   clientID,
		conn: conn,
		send: make(chan any, m.opts.SendBuffer),
		done: make(chan struct{}),
	}

	m.mu.Lock()
	if _, exists := m.clients[clientID]; exists {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateClient, clientID)
	}
	m.clients[clientID] = client
	total := len(m.clients)
	m.mu.Unlock()

	go client.writePump(m.opts)

	m.log.InfoWith("client connected", "client", clientID, "total", total)
	return client, nil
}

// Unregister removes a client from the registry and closes it.
// Removing an absent entry is a no-op.
func (m *ManagerImpl) Unregister(clientID string) {
	m.mu.Lock()
	client, ok := m.clients[clientID]
	if ok {
		delete(m.clients, clientID)
	}
	total := len(m.clients)
	m.mu.Unlock()

	if ok {
		client.Close()
		m.log.InfoWith("client disconnected", "client", clientID, "total", total)
	}
}

// Get retrieves a client by ID
func (m *ManagerImpl) Get(clientID string) (Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	client, ok := m.clients[clientID]
	return client, ok
}

// SendTo delivers a message to a registered client. An unknown target
// yields ErrClientNotFound; callers doing best-effort fan-out discard it.
func (m *ManagerImpl) SendTo(clientID string, msg any) error {
	m.mu.RLock()
	client, ok := m.clients[clientID]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrClientNotFound, clientID)
	}
	return client.Send(msg)
}

// Has reports whether a client ID is currently registered
func (m *ManagerImpl) Has(clientID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.clients[clientID]
	return exists
}

// Count returns the number of connected clients
func (m *ManagerImpl) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// IDs returns the IDs of all connected clients
func (m *ManagerImpl) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	return ids
}

// Shutdown closes every registered client and empties the registry
func (m *ManagerImpl) Shutdown() {
	m.mu.Lock()
	clients := m.clients
	m.clients = make(map[string]*ClientImpl)
	m.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
