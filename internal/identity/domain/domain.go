// Package domain defines the identity aggregates that own credentials: security
// domains, client applications and end users.
package domain

import (
	"time"

	"github.com/google/uuid"

	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// Domain is a security domain (tenant). It carries the domain-level defaults of
// the expiration cascade and the default password policy.
type Domain struct {
	ID                       uuid.UUID
	Name                     string
	SecretExpirationSettings *secretsDomain.SecretExpirationSettings
	PasswordPolicyID         *uuid.UUID
	CreatedAt                time.Time
}

// User is an end user of a security domain. Certificate credentials reference
// users by ID; the user aggregate itself is owned by an external collaborator.
type User struct {
	ID        uuid.UUID
	DomainID  uuid.UUID
	Username  string
	CreatedAt time.Time
}
