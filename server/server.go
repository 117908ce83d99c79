package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signalhub/pkg/clients"
	"signalhub/pkg/config"
	"signalhub/pkg/health"
	"signalhub/pkg/logger"
	"signalhub/pkg/rooms"
	"signalhub/pkg/signaling"
)

// Server ties the transport layer to the signaling core
type Server struct {
	cfg      *config.ServerConfig
	registry clients.Manager
	rooms    *rooms.Table
	router   *signaling.Router
	monitor  *health.Monitor

	httpServer *http.Server
	log        *logger.Logger
}

// NewServer creates a server instance from configuration
func NewServer(cfg *config.ServerConfig) *Server {
	registry := clients.NewManager(clients.Options{
		SendBuffer: cfg.WebSocket.SendBuffer,
		WriteWait:  cfg.WebSocket.WriteWait(),
		PingPeriod: cfg.WebSocket.PongWait() * 9 / 10,
	})
	tbl := rooms.NewTable()

	return &Server{
		cfg:      cfg,
		registry: registry,
		rooms:    tbl,
		router:   signaling.NewRouter(registry, tbl),
		monitor:  health.NewMonitor(),
		log:      logger.Get().With("component", "server"),
	}
}

// Handler builds the HTTP routing table
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", s.handleStatus)
	router.GET("/health", s.handleHealth)
	router.GET("/api/status", s.handleDetailedStatus)

	router.GET("/ws/:clientID", s.handleWebSocket)
	router.GET("/ws", s.handleWebSocket)

	return router
}

// Start runs the HTTP server until Shutdown is called
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.InfoWith("server listening", "address", s.cfg.Address)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown closes all client connections and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.registry.Shutdown()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleStatus reports current connections and room membership
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":            "Video Call Signaling Server",
		"status":             "running",
		"active_connections": s.registry.Count(),
		"active_rooms":       s.rooms.Count(),
		"rooms":              s.rooms.Snapshot(),
	})
}

// handleHealth is the liveness probe
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handleDetailedStatus reports uptime and process resource usage
func (s *Server) handleDetailedStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.GetReport(s.registry.Count(), s.rooms.Count()))
}
