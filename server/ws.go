package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checking
	},
}

// handleWebSocket upgrades the connection and runs the client's message
// stream. The client identifier comes verbatim from the path; connections
// without one get a server-generated identifier.
func (s *Server) handleWebSocket(c *gin.Context) {
	clientID := c.Param("clientID")
	if clientID == "" {
		clientID = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.ErrorWithErr("websocket upgrade failed", err, "client", clientID)
		return
	}

	if _, err := s.registry.Register(clientID, conn); err != nil {
		// Duplicate identifier: refuse this connection cleanly instead
		// of silently replacing the live one
		s.log.WarnWith("connection rejected", "client", clientID, "error", err)
		deadline := time.Now().Add(s.cfg.WebSocket.WriteWait())
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "client id already in use"),
			deadline)
		conn.Close()
		return
	}

	s.readLoop(clientID, conn)
}

// readLoop pumps frames from the socket into the router. It is the only
// reader on the connection and its exit is the single trigger for
// disconnect cleanup on this path.
func (s *Server) readLoop(clientID string, conn *websocket.Conn) {
	defer s.router.Disconnect(clientID)

	conn.SetReadLimit(s.cfg.WebSocket.ReadLimit)
	conn.SetReadDeadline(time.Now().Add(s.cfg.WebSocket.PongWait()))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.WebSocket.PongWait()))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.log.WarnWith("read error", "client", clientID, "error", err)
			}
			return
		}

		// Invalid frames are skipped; only transport errors end the stream
		if err := s.router.Dispatch(clientID, data); err != nil {
			s.log.WarnWith("message rejected", "client", clientID, "error", err)
		}
	}
}
