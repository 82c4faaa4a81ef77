package dto

import (
	"time"

	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
)

// CertificateCredentialResponse is the API projection of a certificate credential.
type CertificateCredentialResponse struct {
	ID                      string    `json:"id"`
	ReferenceType           string    `json:"reference_type"`
	ReferenceID             string    `json:"reference_id"`
	UserID                  string    `json:"user_id"`
	CertificateThumbprint   string    `json:"certificate_thumbprint"`
	CertificateSubjectDN    string    `json:"certificate_subject_dn"`
	CertificateIssuerDN     string    `json:"certificate_issuer_dn"`
	CertificateSerialNumber string    `json:"certificate_serial_number"`
	CreatedAt               time.Time `json:"created_at"`
}

// MapCertificateCredentialToResponse converts a domain credential to its API projection.
func MapCertificateCredentialToResponse(credential *credentialsDomain.CertificateCredential) CertificateCredentialResponse {
	return CertificateCredentialResponse{
		ID:                      credential.ID.String(),
		ReferenceType:           string(credential.ReferenceType),
		ReferenceID:             credential.ReferenceID.String(),
		UserID:                  credential.UserID.String(),
		CertificateThumbprint:   credential.CertificateThumbprint,
		CertificateSubjectDN:    credential.CertificateSubjectDN,
		CertificateIssuerDN:     credential.CertificateIssuerDN,
		CertificateSerialNumber: credential.CertificateSerialNumber,
		CreatedAt:               credential.CreatedAt,
	}
}
