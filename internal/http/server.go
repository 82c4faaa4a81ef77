// Package http provides the API HTTP server and its route registration.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	auditHTTP "github.com/idforge/credentials/internal/audit/http"
	"github.com/idforge/credentials/internal/config"
	credentialsHTTP "github.com/idforge/credentials/internal/credentials/http"
	secretsHTTP "github.com/idforge/credentials/internal/secrets/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	secretHandler *secretsHTTP.SecretHandler,
	certificateHandler *credentialsHTTP.CertificateHandler,
	auditEventHandler *auditHTTP.EventHandler,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")
	v1.GET("/audit-events", auditEventHandler.ListHandler)

	domains := v1.Group("/domains/:domain_id")

	applications := domains.Group("/applications/:application_id")
	applications.GET("/secrets", secretHandler.ListHandler)
	applications.POST("/secrets", secretHandler.CreateHandler)
	applications.POST("/secrets/validate", secretHandler.ValidateHandler)
	applications.POST("/secrets/:secret_id/renew", secretHandler.RenewHandler)
	applications.DELETE("/secrets/:secret_id", secretHandler.DeleteHandler)

	users := domains.Group("/users/:user_id")
	users.POST("/certificates", certificateHandler.EnrollHandler)
	users.DELETE("/certificates/:credential_id", certificateHandler.DeleteHandler)

	domains.GET("/certificates/:credential_id", certificateHandler.GetHandler)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
