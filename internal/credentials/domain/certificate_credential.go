// Package domain defines certificate credential domain models.
//
// Certificate credentials let end users authenticate with X.509 certificates.
// Each credential is scoped to a reference (typically a security domain) and
// de-duplicated by certificate thumbprint within that reference.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceType identifies the kind of owner a credential is scoped to.
type ReferenceType string

// ReferenceTypeDomain scopes a credential to a security domain.
const ReferenceTypeDomain ReferenceType = "DOMAIN"

// CertificateCredential is a certificate-based user credential.
type CertificateCredential struct {
	ID                      uuid.UUID
	ReferenceType           ReferenceType
	ReferenceID             uuid.UUID
	UserID                  uuid.UUID
	CertificateThumbprint   string
	CertificateSubjectDN    string
	CertificateIssuerDN     string
	CertificateSerialNumber string
	CreatedAt               time.Time
}
