// Package http provides HTTP handlers for client secret lifecycle operations.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/httputil"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	"github.com/idforge/credentials/internal/secrets/http/dto"
	secretsUseCase "github.com/idforge/credentials/internal/secrets/usecase"
	customValidation "github.com/idforge/credentials/internal/validation"
)

// DomainRepository loads the security domain that scopes a request.
type DomainRepository interface {
	Get(ctx context.Context, domainID uuid.UUID) (*identityDomain.Domain, error)
}

// SecretHandler handles HTTP requests for client secret lifecycle operations.
type SecretHandler struct {
	secretUseCase   secretsUseCase.ClientSecretUseCase
	domainRepo      DomainRepository
	applicationRepo secretsUseCase.ApplicationRepository
	logger          *slog.Logger
}

// NewSecretHandler creates a new SecretHandler.
func NewSecretHandler(
	secretUseCase secretsUseCase.ClientSecretUseCase,
	domainRepo DomainRepository,
	applicationRepo secretsUseCase.ApplicationRepository,
	logger *slog.Logger,
) *SecretHandler {
	return &SecretHandler{
		secretUseCase:   secretUseCase,
		domainRepo:      domainRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// CreateHandler creates a new client secret for an application.
// POST /v1/domains/:domain_id/applications/:application_id/secrets
// Returns 201 Created with the plaintext secret, shown exactly once.
func (h *SecretHandler) CreateHandler(c *gin.Context) {
	domain, application, ok := h.loadScope(c)
	if !ok {
		return
	}

	var req dto.CreateClientSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := dto.ToNewClientSecret(req)
	output, err := h.secretUseCase.Create(c.Request.Context(), domain, application, input, httputil.ActorFromRequest(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateClientSecretResponse{
		ClientSecretResponse: dto.MapClientSecretToResponse(output.Secret),
		Secret:               output.RawSecret,
	})
}

// RenewHandler regenerates the value of an existing secret in place.
// POST /v1/domains/:domain_id/applications/:application_id/secrets/:secret_id/renew
// Returns 200 OK with the new plaintext secret, shown exactly once.
func (h *SecretHandler) RenewHandler(c *gin.Context) {
	domain, application, ok := h.loadScope(c)
	if !ok {
		return
	}

	secretID, ok := h.parseID(c, "secret_id", "secret")
	if !ok {
		return
	}

	output, err := h.secretUseCase.Renew(c.Request.Context(), domain, application, secretID, httputil.ActorFromRequest(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CreateClientSecretResponse{
		ClientSecretResponse: dto.MapClientSecretToResponse(output.Secret),
		Secret:               output.RawSecret,
	})
}

// DeleteHandler removes a secret from an application.
// DELETE /v1/domains/:domain_id/applications/:application_id/secrets/:secret_id
// Returns 204 No Content. The last remaining secret cannot be deleted.
func (h *SecretHandler) DeleteHandler(c *gin.Context) {
	domain, application, ok := h.loadScope(c)
	if !ok {
		return
	}

	secretID, ok := h.parseID(c, "secret_id", "secret")
	if !ok {
		return
	}

	err := h.secretUseCase.Delete(c.Request.Context(), domain, application, secretID, httputil.ActorFromRequest(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHandler lists the secrets of an application as metadata projections.
// GET /v1/domains/:domain_id/applications/:application_id/secrets
// Returns 200 OK; stored secret values are never included.
func (h *SecretHandler) ListHandler(c *gin.Context) {
	_, application, ok := h.loadScope(c)
	if !ok {
		return
	}

	secrets := h.secretUseCase.FindAllByApplication(application)

	c.JSON(http.StatusOK, dto.MapClientSecretListToResponse(secrets))
}

// ValidateHandler checks a candidate secret against the application's secrets.
// POST /v1/domains/:domain_id/applications/:application_id/secrets/validate
// Returns 200 OK with the match result.
func (h *SecretHandler) ValidateHandler(c *gin.Context) {
	_, application, ok := h.loadScope(c)
	if !ok {
		return
	}

	var req dto.ValidateSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	valid := h.secretUseCase.Validate(application, req.Secret)

	c.JSON(http.StatusOK, dto.ValidateSecretResponse{Valid: valid})
}

// loadScope resolves the domain and application path parameters, writing the
// error response itself when resolution fails. Applications from another
// domain surface as not found.
func (h *SecretHandler) loadScope(c *gin.Context) (*identityDomain.Domain, *identityDomain.Application, bool) {
	domainID, ok := h.parseID(c, "domain_id", "domain")
	if !ok {
		return nil, nil, false
	}
	applicationID, ok := h.parseID(c, "application_id", "application")
	if !ok {
		return nil, nil, false
	}

	domain, err := h.domainRepo.Get(c.Request.Context(), domainID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, nil, false
	}

	application, err := h.applicationRepo.Get(c.Request.Context(), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, nil, false
	}
	if application.DomainID != domain.ID {
		httputil.HandleErrorGin(c, identityDomain.ErrApplicationNotFound, h.logger)
		return nil, nil, false
	}

	return domain, application, true
}

func (h *SecretHandler) parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid %s ID format: must be a valid UUID", label),
			h.logger)
		return uuid.Nil, false
	}
	return id, true
}
