package app

import (
	"fmt"
	"sync"

	auditHTTP "github.com/idforge/credentials/internal/audit/http"
	auditRepository "github.com/idforge/credentials/internal/audit/repository"
	auditUseCase "github.com/idforge/credentials/internal/audit/usecase"
)

// auditComponents holds the lazily initialized audit layer.
type auditComponents struct {
	eventRepoInit sync.Once
	reporterInit  sync.Once
	handlerInit   sync.Once

	eventRepo *auditRepository.PostgreSQLEventRepository
	reporter  auditUseCase.Reporter
	handler   *auditHTTP.EventHandler
}

// AuditEventRepository returns the audit event repository instance.
func (c *Container) AuditEventRepository() (*auditRepository.PostgreSQLEventRepository, error) {
	c.audit.eventRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["auditEventRepo"] = fmt.Errorf("failed to get database for audit event repository: %w", err)
			return
		}
		c.audit.eventRepo = auditRepository.NewPostgreSQLEventRepository(db)
	})
	if err, exists := c.initErrors["auditEventRepo"]; exists {
		return nil, err
	}
	return c.audit.eventRepo, nil
}

// AuditReporter returns the fire-and-forget audit reporter.
func (c *Container) AuditReporter() (auditUseCase.Reporter, error) {
	c.audit.reporterInit.Do(func() {
		eventRepo, err := c.AuditEventRepository()
		if err != nil {
			c.initErrors["auditReporter"] = fmt.Errorf("failed to get audit event repository for audit reporter: %w", err)
			return
		}
		c.audit.reporter = auditUseCase.NewReporter(eventRepo, c.Logger())
	})
	if err, exists := c.initErrors["auditReporter"]; exists {
		return nil, err
	}
	return c.audit.reporter, nil
}

// AuditEventHandler returns the HTTP handler for audit event queries.
func (c *Container) AuditEventHandler() (*auditHTTP.EventHandler, error) {
	c.audit.handlerInit.Do(func() {
		eventRepo, err := c.AuditEventRepository()
		if err != nil {
			c.initErrors["auditEventHandler"] = fmt.Errorf("failed to get audit event repository for audit event handler: %w", err)
			return
		}
		c.audit.handler = auditHTTP.NewEventHandler(eventRepo, c.Logger())
	})
	if err, exists := c.initErrors["auditEventHandler"]; exists {
		return nil, err
	}
	return c.audit.handler, nil
}
