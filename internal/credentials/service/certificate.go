// Package service provides X.509 certificate parsing for credential enrollment.
package service

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"time"

	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
	apperrors "github.com/idforge/credentials/internal/errors"
)

// ParsedCertificate carries the fields of an enrollment candidate extracted
// from its PEM payload.
type ParsedCertificate struct {
	// Thumbprint is the lowercase hex SHA-256 digest of the DER encoding,
	// used as the certificate's unique fingerprint for de-duplication.
	Thumbprint   string
	SubjectDN    string
	IssuerDN     string
	SerialNumber string
	NotAfter     time.Time
}

// ParseCertificate decodes a PEM-encoded X.509 certificate and extracts the
// fields recorded on a credential. Returns ErrInvalidCertificate when the
// payload is not a parseable certificate.
func ParseCertificate(pemCertificate string) (*ParsedCertificate, error) {
	block, _ := pem.Decode([]byte(pemCertificate))
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, apperrors.Wrap(credentialsDomain.ErrInvalidCertificate, "no certificate block in PEM data")
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, apperrors.Wrap(credentialsDomain.ErrInvalidCertificate, err.Error())
	}

	sum := sha256.Sum256(cert.Raw)

	return &ParsedCertificate{
		Thumbprint:   hex.EncodeToString(sum[:]),
		SubjectDN:    cert.Subject.String(),
		IssuerDN:     cert.Issuer.String(),
		SerialNumber: cert.SerialNumber.String(),
		NotAfter:     cert.NotAfter,
	}, nil
}

// Expired reports whether the certificate's validity ends at or before the
// given instant.
func (p *ParsedCertificate) Expired(now time.Time) bool {
	return !p.NotAfter.After(now)
}
