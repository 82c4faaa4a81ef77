package domain

import (
	"github.com/idforge/credentials/internal/errors"
)

// Certificate credential error definitions.
var (
	// ErrCertificateNotFound indicates no credential matched the requested
	// (domain, id) tuple. Cross-tenant records surface as not found, never as a
	// permission error.
	ErrCertificateNotFound = errors.Wrap(errors.ErrNotFound, "certificate credential not found")

	// ErrCertificateExpired indicates the candidate certificate's notAfter is
	// already in the past. Raised before any repository call.
	ErrCertificateExpired = errors.Wrap(errors.ErrInvalidInput, "certificate is expired")

	// ErrInvalidCertificate indicates the PEM payload could not be parsed as an
	// X.509 certificate.
	ErrInvalidCertificate = errors.Wrap(errors.ErrInvalidInput, "invalid certificate")

	// ErrDuplicateCertificate indicates a credential with the same thumbprint
	// already exists within the reference scope.
	ErrDuplicateCertificate = errors.Wrap(errors.ErrConflict, "certificate already enrolled")
)
