// Package domain defines client secret domain models and business logic.
//
// Client secrets authenticate OAuth2/OIDC client applications. Each secret
// records which hash settings produced it so secrets created under different
// algorithms keep validating after the application default changes.
package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Algorithm identifies the hash algorithm that produced a secret value.
type Algorithm string

const (
	// AlgorithmNone stores the raw secret value. Required when the token
	// endpoint authentication method needs the plaintext (e.g. as an HMAC key).
	AlgorithmNone Algorithm = "NONE"

	// AlgorithmBCrypt stores an irreversible bcrypt hash.
	AlgorithmBCrypt Algorithm = "BCRYPT"

	// AlgorithmSHA512 is a legacy one-way hash retained for backward
	// validation only. New secrets are never created with it.
	AlgorithmSHA512 Algorithm = "SHA_512"
)

// Valid reports whether the algorithm is one of the supported identifiers.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmNone, AlgorithmBCrypt, AlgorithmSHA512:
		return true
	}
	return false
}

// SecretSettings is an immutable record describing which hash algorithm (and
// its parameters) produced a given secret. Once referenced by a live secret the
// entry must never be mutated; encoder caches key on the ID alone.
type SecretSettings struct {
	ID         uuid.UUID         `json:"id"`
	Algorithm  Algorithm         `json:"algorithm"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// SameValue reports whether two settings describe the same algorithm and
// parameters, independent of their identities. Used to de-duplicate settings
// entries on an application.
func (s SecretSettings) SameValue(other SecretSettings) bool {
	if s.Algorithm != other.Algorithm {
		return false
	}
	return maps.Equal(s.Parameters, other.Parameters)
}

// ClientSecret is a shared secret owned by an application.
// SecretValue holds either the raw secret (AlgorithmNone) or an irreversible hash.
type ClientSecret struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	SecretValue string     `json:"secret_value,omitempty"`
	SettingsID  uuid.UUID  `json:"settings_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the secret is past its expiration at the given instant.
// Secrets without an expiration never expire.
func (c *ClientSecret) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// SecretExpirationSettings is the expiration policy value object, held once at
// domain scope and optionally once at application scope.
type SecretExpirationSettings struct {
	Enabled           bool  `json:"enabled"`
	ExpiryTimeSeconds int64 `json:"expiry_time_seconds"`
}

// NewClientSecret contains the caller-supplied parameters for creating a
// client secret. The secret value is always generated server side.
type NewClientSecret struct {
	Name string
}
