package usecase

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	"github.com/idforge/credentials/internal/credentials/usecase/mocks"
	apperrors "github.com/idforge/credentials/internal/errors"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
)

func newPEMCertificate(t *testing.T, notBefore, notAfter time.Time) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(7),
		Subject:      pkix.Name{CommonName: "alice"},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func newCertificateTestUseCase(config Config) (CertificateUseCase, *mocks.MockCertificateRepository, *mocks.MockAuditReporter) {
	mockRepo := &mocks.MockCertificateRepository{}
	mockAudit := &mocks.MockAuditReporter{}
	return NewCertificateUseCase(config, mockRepo, mockAudit), mockRepo, mockAudit
}

func certificateAuditWith(eventType string, status auditDomain.Status) interface{} {
	return mock.MatchedBy(func(event *auditDomain.Event) bool {
		return event.Type == eventType && event.Status == status
	})
}

// TestCertificateUseCase_EnrollCertificate tests the EnrollCertificate method
// of certificateUseCase.
func TestCertificateUseCase_EnrollCertificate(t *testing.T) {
	ctx := context.Background()
	actor := auditDomain.Actor{ID: uuid.Must(uuid.NewV7()), Type: auditDomain.ActorTypeUser}
	config := Config{MaxCertificatesPerUser: 2}
	domain := &identityDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "acme"}
	userID := uuid.Must(uuid.NewV7())

	now := time.Now().UTC()
	validPEM := newPEMCertificate(t, now.Add(-time.Hour), now.Add(24*time.Hour))
	expiredPEM := newPEMCertificate(t, now.Add(-48*time.Hour), now.Add(-time.Hour))

	t.Run("Success", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockRepo.On("GetByThumbprint", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")).Once()
		mockRepo.On("FindByUserID", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, userID).
			Return([]*credentialsDomain.CertificateCredential{}, nil).Once()
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(credential *credentialsDomain.CertificateCredential) bool {
			return credential.UserID == userID && credential.ReferenceID == domain.ID
		})).Return(nil).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusSuccess)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, validPEM, actor)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "CN=alice", credential.CertificateSubjectDN)
		assert.Equal(t, "7", credential.CertificateSerialNumber)
		assert.NotEmpty(t, credential.CertificateThumbprint)
		mockRepo.AssertExpectations(t)
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_InvalidPEM", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusFailure)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, "not a certificate", actor)

		// Assert
		assert.ErrorIs(t, err, credentialsDomain.ErrInvalidCertificate)
		assert.Nil(t, credential)
		mockRepo.AssertNotCalled(t, "GetByThumbprint")
		mockRepo.AssertNotCalled(t, "Create")
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_ExpiredCertificate", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusFailure)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, expiredPEM, actor)

		// Assert
		assert.ErrorIs(t, err, credentialsDomain.ErrCertificateExpired)
		assert.Nil(t, credential)
		// Expiry is checked before any repository access
		mockRepo.AssertNotCalled(t, "GetByThumbprint")
		mockRepo.AssertNotCalled(t, "FindByUserID")
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_DuplicateThumbprint", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockRepo.On("GetByThumbprint", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, mock.Anything).
			Return(&credentialsDomain.CertificateCredential{ID: uuid.Must(uuid.NewV7())}, nil).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusFailure)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, validPEM, actor)

		// Assert
		assert.ErrorIs(t, err, credentialsDomain.ErrDuplicateCertificate)
		assert.Nil(t, credential)
		mockRepo.AssertNotCalled(t, "Create")
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_CertificateLimitReached", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)
		existing := []*credentialsDomain.CertificateCredential{
			{ID: uuid.Must(uuid.NewV7())},
			{ID: uuid.Must(uuid.NewV7())},
		}

		// Setup expectations
		mockRepo.On("GetByThumbprint", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")).Once()
		mockRepo.On("FindByUserID", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, userID).
			Return(existing, nil).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusFailure)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, validPEM, actor)

		// Assert
		require.Error(t, err)
		assert.Nil(t, credential)
		var limitErr *apperrors.LimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, 2, limitErr.Current)
		assert.Equal(t, 2, limitErr.Limit)
		mockRepo.AssertNotCalled(t, "Create")
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_RepositoryFailure", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockRepo.On("GetByThumbprint", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, mock.Anything).
			Return(nil, apperrors.Technical(assert.AnError, "query failed")).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateEnrolled, auditDomain.StatusFailure)).Once()

		// Execute
		credential, err := uc.EnrollCertificate(ctx, domain, userID, validPEM, actor)

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrTechnical)
		assert.Nil(t, credential)
		mockRepo.AssertNotCalled(t, "FindByUserID")
		mockAudit.AssertExpectations(t)
	})
}

// TestCertificateUseCase_FindByID tests the FindByID method of certificateUseCase.
func TestCertificateUseCase_FindByID(t *testing.T) {
	ctx := context.Background()
	config := Config{MaxCertificatesPerUser: 2}
	domain := &identityDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "acme"}

	t.Run("Success", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, _ := newCertificateTestUseCase(config)
		credential := &credentialsDomain.CertificateCredential{
			ID:            uuid.Must(uuid.NewV7()),
			ReferenceType: credentialsDomain.ReferenceTypeDomain,
			ReferenceID:   domain.ID,
		}

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credential.ID).Return(credential, nil).Once()

		// Execute
		found, err := uc.FindByID(ctx, domain, credential.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, credential, found)
	})

	t.Run("Error_OtherDomain", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, _ := newCertificateTestUseCase(config)
		credential := &credentialsDomain.CertificateCredential{
			ID:            uuid.Must(uuid.NewV7()),
			ReferenceType: credentialsDomain.ReferenceTypeDomain,
			ReferenceID:   uuid.Must(uuid.NewV7()),
		}

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credential.ID).Return(credential, nil).Once()

		// Execute
		found, err := uc.FindByID(ctx, domain, credential.ID)

		// Assert
		// Cross-domain lookups read as not found, never as forbidden
		assert.ErrorIs(t, err, credentialsDomain.ErrCertificateNotFound)
		assert.Nil(t, found)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, _ := newCertificateTestUseCase(config)
		credentialID := uuid.Must(uuid.NewV7())

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credentialID).
			Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "certificate credential not found")).Once()

		// Execute
		found, err := uc.FindByID(ctx, domain, credentialID)

		// Assert
		assert.ErrorIs(t, err, credentialsDomain.ErrCertificateNotFound)
		assert.Nil(t, found)
	})
}

// TestCertificateUseCase_DeleteByDomainAndUserAndID tests the scoped delete.
func TestCertificateUseCase_DeleteByDomainAndUserAndID(t *testing.T) {
	ctx := context.Background()
	actor := auditDomain.Actor{ID: uuid.Must(uuid.NewV7()), Type: auditDomain.ActorTypeUser}
	config := Config{MaxCertificatesPerUser: 2}
	domain := &identityDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "acme"}
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)
		credential := &credentialsDomain.CertificateCredential{
			ID:                    uuid.Must(uuid.NewV7()),
			ReferenceType:         credentialsDomain.ReferenceTypeDomain,
			ReferenceID:           domain.ID,
			UserID:                userID,
			CertificateThumbprint: "ab12",
		}

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credential.ID).Return(credential, nil).Once()
		mockRepo.On("Delete", mock.Anything, credential.ID).Return(nil).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateDeleted, auditDomain.StatusSuccess)).Once()

		// Execute
		deleted, err := uc.DeleteByDomainAndUserAndID(ctx, domain, userID, credential.ID, actor)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, credential, deleted)
		mockRepo.AssertExpectations(t)
		mockAudit.AssertExpectations(t)
	})

	t.Run("Error_UserMismatch", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)
		credential := &credentialsDomain.CertificateCredential{
			ID:            uuid.Must(uuid.NewV7()),
			ReferenceType: credentialsDomain.ReferenceTypeDomain,
			ReferenceID:   domain.ID,
			UserID:        uuid.Must(uuid.NewV7()),
		}

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credential.ID).Return(credential, nil).Once()

		// Execute
		deleted, err := uc.DeleteByDomainAndUserAndID(ctx, domain, userID, credential.ID, actor)

		// Assert
		assert.ErrorIs(t, err, credentialsDomain.ErrCertificateNotFound)
		assert.Nil(t, deleted)
		mockRepo.AssertNotCalled(t, "Delete")
		mockAudit.AssertNotCalled(t, "Report")
	})

	t.Run("Error_DeleteFailure", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)
		credential := &credentialsDomain.CertificateCredential{
			ID:            uuid.Must(uuid.NewV7()),
			ReferenceType: credentialsDomain.ReferenceTypeDomain,
			ReferenceID:   domain.ID,
			UserID:        userID,
		}

		// Setup expectations
		mockRepo.On("Get", mock.Anything, credential.ID).Return(credential, nil).Once()
		mockRepo.On("Delete", mock.Anything, credential.ID).
			Return(apperrors.Technical(assert.AnError, "delete failed")).Once()
		mockAudit.On("Report", mock.Anything, certificateAuditWith(auditDomain.EventCertificateDeleted, auditDomain.StatusFailure)).Once()

		// Execute
		deleted, err := uc.DeleteByDomainAndUserAndID(ctx, domain, userID, credential.ID, actor)

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrTechnical)
		assert.Nil(t, deleted)
		mockAudit.AssertExpectations(t)
	})
}

// TestCertificateUseCase_BulkDeletes tests the unaudited bulk delete paths.
func TestCertificateUseCase_BulkDeletes(t *testing.T) {
	ctx := context.Background()
	config := Config{MaxCertificatesPerUser: 2}
	domain := &identityDomain.Domain{ID: uuid.Must(uuid.NewV7()), Name: "acme"}
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_DeleteByUserID", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockRepo.On("DeleteByUserID", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID, userID).
			Return(nil).Once()

		// Execute
		err := uc.DeleteByUserID(ctx, domain, userID)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockAudit.AssertNotCalled(t, "Report")
	})

	t.Run("Success_DeleteByDomain", func(t *testing.T) {
		// Setup mocks
		uc, mockRepo, mockAudit := newCertificateTestUseCase(config)

		// Setup expectations
		mockRepo.On("DeleteByReference", mock.Anything, credentialsDomain.ReferenceTypeDomain, domain.ID).
			Return(nil).Once()

		// Execute
		err := uc.DeleteByDomain(ctx, domain)

		// Assert
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockAudit.AssertNotCalled(t, "Report")
	})
}
