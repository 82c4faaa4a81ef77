package service

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	apperrors "github.com/idforge/credentials/internal/errors"
	identityDomain "github.com/idforge/credentials/internal/identity/domain"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// EncoderRegistry maps secret settings to password encoder instances.
//
// Encoders are cached by settings ID: settings entries are immutable once
// created, so a cache entry stays valid for the process lifetime and a later
// settings payload seen under the same ID is ignored. Safe for concurrent use;
// duplicate concurrent inserts for the same ID are harmless since encoders for
// the same settings are value-equal.
type EncoderRegistry struct {
	cache sync.Map // uuid.UUID -> Encoder
}

// NewEncoderRegistry creates an empty encoder registry. Constructed once at
// startup; there is no eviction or teardown.
func NewEncoderRegistry() *EncoderRegistry {
	return &EncoderRegistry{}
}

// EncoderFor returns the encoder for the given settings entry. Nil settings
// yield a plaintext passthrough encoder for legacy, unmigrated secrets.
func (r *EncoderRegistry) EncoderFor(settings *secretsDomain.SecretSettings) (Encoder, error) {
	if settings == nil {
		return plaintextEncoder{}, nil
	}

	if cached, ok := r.cache.Load(settings.ID); ok {
		return cached.(Encoder), nil
	}

	encoder, err := newEncoder(settings)
	if err != nil {
		return nil, err
	}

	actual, _ := r.cache.LoadOrStore(settings.ID, encoder)
	return actual.(Encoder), nil
}

// GenerateSecret encodes the raw secret with the encoder resolved from the
// settings entry, stamps the creation instant and computes the effective
// expiration through the domain/application cascade.
func (r *EncoderRegistry) GenerateSecret(
	name, rawSecret string,
	settings *secretsDomain.SecretSettings,
	domainExpiration, applicationExpiration *secretsDomain.SecretExpirationSettings,
) (*secretsDomain.ClientSecret, error) {
	encoder, err := r.EncoderFor(settings)
	if err != nil {
		return nil, err
	}

	value, err := encoder.Encode(rawSecret)
	if err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	secret := &secretsDomain.ClientSecret{
		Name:        name,
		SecretValue: value,
		CreatedAt:   createdAt,
		ExpiresAt:   secretsDomain.ResolveExpiry(createdAt, domainExpiration, applicationExpiration),
	}
	if settings != nil {
		secret.SettingsID = settings.ID
	}

	return secret, nil
}

// ValidateSecret reports whether the candidate matches any non-expired secret
// of the application. Each stored secret resolves its encoder by its own
// settings ID, so secrets created under different algorithms validate with
// their own algorithm. An expired secret never validates.
func (r *EncoderRegistry) ValidateSecret(application *identityDomain.Application, candidate string) bool {
	now := time.Now().UTC()

	for i := range application.Secrets {
		secret := &application.Secrets[i]
		if secret.Expired(now) {
			continue
		}

		settings := application.SecretSettingsByID(secret.SettingsID)
		encoder, err := r.EncoderFor(settings)
		if err != nil {
			continue
		}

		if encoder.Matches(candidate, secret.SecretValue) {
			return true
		}
	}

	return false
}

// NewRawSecret creates a new cryptographically secure 32-byte random secret,
// base64-encoded for transmission and storage.
func NewRawSecret() (string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate random secret")
	}
	return base64.URLEncoding.EncodeToString(randomBytes), nil
}
