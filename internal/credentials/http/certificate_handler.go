// Package http provides HTTP handlers for certificate credential operations.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/idforge/credentials/internal/credentials/http/dto"
	credentialsUseCase "github.com/idforge/credentials/internal/credentials/usecase"
	"github.com/idforge/credentials/internal/httputil"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	customValidation "github.com/idforge/credentials/internal/validation"
)

// DomainRepository loads the security domain that scopes a request.
type DomainRepository interface {
	Get(ctx context.Context, domainID uuid.UUID) (*identityDomain.Domain, error)
}

// UserRepository loads the user a credential is enrolled for.
type UserRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*identityDomain.User, error)
}

// CertificateHandler handles HTTP requests for certificate credential operations.
type CertificateHandler struct {
	certificateUseCase credentialsUseCase.CertificateUseCase
	domainRepo         DomainRepository
	userRepo           UserRepository
	logger             *slog.Logger
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(
	certificateUseCase credentialsUseCase.CertificateUseCase,
	domainRepo DomainRepository,
	userRepo UserRepository,
	logger *slog.Logger,
) *CertificateHandler {
	return &CertificateHandler{
		certificateUseCase: certificateUseCase,
		domainRepo:         domainRepo,
		userRepo:           userRepo,
		logger:             logger,
	}
}

// EnrollHandler enrolls a certificate credential for a user.
// POST /v1/domains/:domain_id/users/:user_id/certificates
// Returns 201 Created with the stored credential metadata.
func (h *CertificateHandler) EnrollHandler(c *gin.Context) {
	domain, user, ok := h.loadScope(c)
	if !ok {
		return
	}

	var req dto.EnrollCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	credential, err := h.certificateUseCase.EnrollCertificate(
		c.Request.Context(), domain, user.ID, req.Certificate, httputil.ActorFromRequest(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCertificateCredentialToResponse(credential))
}

// GetHandler retrieves a certificate credential by ID within a domain.
// GET /v1/domains/:domain_id/certificates/:credential_id
// Returns 200 OK; credentials from another domain surface as 404.
func (h *CertificateHandler) GetHandler(c *gin.Context) {
	domainID, ok := h.parseID(c, "domain_id", "domain")
	if !ok {
		return
	}
	credentialID, ok := h.parseID(c, "credential_id", "credential")
	if !ok {
		return
	}

	domain, err := h.domainRepo.Get(c.Request.Context(), domainID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	credential, err := h.certificateUseCase.FindByID(c.Request.Context(), domain, credentialID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCertificateCredentialToResponse(credential))
}

// DeleteHandler removes a certificate credential.
// DELETE /v1/domains/:domain_id/users/:user_id/certificates/:credential_id
// Returns 204 No Content only when the credential belongs to the given
// domain and user; any mismatch surfaces as 404.
func (h *CertificateHandler) DeleteHandler(c *gin.Context) {
	domain, user, ok := h.loadScope(c)
	if !ok {
		return
	}

	credentialID, ok := h.parseID(c, "credential_id", "credential")
	if !ok {
		return
	}

	_, err := h.certificateUseCase.DeleteByDomainAndUserAndID(
		c.Request.Context(), domain, user.ID, credentialID, httputil.ActorFromRequest(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// loadScope resolves the domain and user path parameters, writing the error
// response itself when resolution fails. Users from another domain surface as
// not found.
func (h *CertificateHandler) loadScope(c *gin.Context) (*identityDomain.Domain, *identityDomain.User, bool) {
	domainID, ok := h.parseID(c, "domain_id", "domain")
	if !ok {
		return nil, nil, false
	}
	userID, ok := h.parseID(c, "user_id", "user")
	if !ok {
		return nil, nil, false
	}

	domain, err := h.domainRepo.Get(c.Request.Context(), domainID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, nil, false
	}

	user, err := h.userRepo.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return nil, nil, false
	}
	if user.DomainID != domain.ID {
		httputil.HandleErrorGin(c, identityDomain.ErrUserNotFound, h.logger)
		return nil, nil, false
	}

	return domain, user, true
}

func (h *CertificateHandler) parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid %s ID format: must be a valid UUID", label),
			h.logger)
		return uuid.Nil, false
	}
	return id, true
}
