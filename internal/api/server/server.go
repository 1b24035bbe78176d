// Package server assembles the HTTP server around the REST handler.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/superchain/token-explorer/internal/api/middleware"
	"github.com/superchain/token-explorer/internal/api/rest"
)

// Server is the HTTP front of the token explorer.
type Server struct {
	httpServer *http.Server
}

// New builds the server with routes, middleware and the given handler.
func New(addr string, apiKeys []string, handler *rest.Handler, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.SetupCORS(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/api/v1")
	authenticated := router.Group("/api/v1")
	authenticated.Use(middleware.APIKeyAuth(apiKeys))
	handler.Register(public, authenticated)

	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: router,
		},
	}
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
