package app

import (
	"fmt"
	"sync"

	internalHTTP "github.com/idforge/credentials/internal/http"
)

// serverComponents holds the lazily initialized HTTP servers.
type serverComponents struct {
	httpServerInit    sync.Once
	metricsServerInit sync.Once

	httpServer    *internalHTTP.Server
	metricsServer *internalHTTP.MetricsServer
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*internalHTTP.Server, error) {
	c.servers.httpServerInit.Do(func() {
		secretHandler, err := c.SecretHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get secret handler for http server: %w", err)
			return
		}

		certificateHandler, err := c.CertificateHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get certificate handler for http server: %w", err)
			return
		}

		auditEventHandler, err := c.AuditEventHandler()
		if err != nil {
			c.initErrors["httpServer"] = fmt.Errorf("failed to get audit event handler for http server: %w", err)
			return
		}

		c.servers.httpServer = internalHTTP.NewServer(c.config, c.Logger(), secretHandler, certificateHandler, auditEventHandler)
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.servers.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*internalHTTP.MetricsServer, error) {
	c.servers.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
			return
		}
		if provider == nil {
			return
		}
		c.servers.metricsServer = internalHTTP.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.servers.metricsServer, nil
}
