package domain

import (
	"time"

	"github.com/google/uuid"

	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// TokenEndpointAuthMethod identifies how a client application authenticates
// against the token endpoint.
type TokenEndpointAuthMethod string

const (
	// ClientSecretBasic authenticates with the secret in the Authorization header.
	ClientSecretBasic TokenEndpointAuthMethod = "client_secret_basic"

	// ClientSecretPost authenticates with the secret in the request body.
	ClientSecretPost TokenEndpointAuthMethod = "client_secret_post"

	// ClientSecretJWT authenticates with a JWT signed with the secret as HMAC
	// key. Validating the signature requires the plaintext secret, so secrets
	// for these applications must be stored with AlgorithmNone.
	ClientSecretJWT TokenEndpointAuthMethod = "client_secret_jwt"
)

// PasswordPolicySettings is the application-level password policy override.
// When Inherited is true the application follows the domain default regardless
// of PolicyID.
type PasswordPolicySettings struct {
	PolicyID  *uuid.UUID `json:"policy_id,omitempty"`
	Inherited bool       `json:"inherited"`
}

// ApplicationSettings groups the per-application configuration overrides.
type ApplicationSettings struct {
	SecretExpiration *secretsDomain.SecretExpirationSettings `json:"secret_expiration,omitempty"`
	PasswordPolicy   *PasswordPolicySettings                 `json:"password_policy,omitempty"`
}

// Application is an OAuth2/OIDC client application. It owns an ordered list of
// client secrets and the settings entries that produced them (index 0 = oldest).
type Application struct {
	ID                      uuid.UUID
	DomainID                uuid.UUID
	Name                    string
	TokenEndpointAuthMethod TokenEndpointAuthMethod
	Secrets                 []secretsDomain.ClientSecret
	SecretSettings          []secretsDomain.SecretSettings
	Settings                *ApplicationSettings
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// SecretByID returns a pointer to the secret with the given ID, or nil.
func (a *Application) SecretByID(id uuid.UUID) *secretsDomain.ClientSecret {
	for i := range a.Secrets {
		if a.Secrets[i].ID == id {
			return &a.Secrets[i]
		}
	}
	return nil
}

// SecretSettingsByID returns the settings entry with the given ID, or nil.
func (a *Application) SecretSettingsByID(id uuid.UUID) *secretsDomain.SecretSettings {
	for i := range a.SecretSettings {
		if a.SecretSettings[i].ID == id {
			return &a.SecretSettings[i]
		}
	}
	return nil
}

// CurrentSecretSettings returns the newest settings entry (last in the list),
// or nil when the application has none. New secrets always use the newest
// configured algorithm.
func (a *Application) CurrentSecretSettings() *secretsDomain.SecretSettings {
	if len(a.SecretSettings) == 0 {
		return nil
	}
	return &a.SecretSettings[len(a.SecretSettings)-1]
}

// EnsureSecretSettings returns a settings entry on the application matching the
// candidate by value, appending the candidate when no entry matches. Settings
// are de-duplicated by value, not re-created per secret.
func (a *Application) EnsureSecretSettings(candidate secretsDomain.SecretSettings) secretsDomain.SecretSettings {
	for i := range a.SecretSettings {
		if a.SecretSettings[i].SameValue(candidate) {
			return a.SecretSettings[i]
		}
	}
	a.SecretSettings = append(a.SecretSettings, candidate)
	return candidate
}

// PruneSecretSettings removes settings entries no longer referenced by any
// surviving secret, preserving insertion order.
func (a *Application) PruneSecretSettings() {
	referenced := make(map[uuid.UUID]bool, len(a.Secrets))
	for i := range a.Secrets {
		referenced[a.Secrets[i].SettingsID] = true
	}

	kept := a.SecretSettings[:0]
	for i := range a.SecretSettings {
		if referenced[a.SecretSettings[i].ID] {
			kept = append(kept, a.SecretSettings[i])
		}
	}
	a.SecretSettings = kept
}

// RemoveSecret deletes the secret with the given ID and prunes settings entries
// left without a referencing secret. Returns false when no secret matched.
func (a *Application) RemoveSecret(id uuid.UUID) bool {
	for i := range a.Secrets {
		if a.Secrets[i].ID == id {
			a.Secrets = append(a.Secrets[:i], a.Secrets[i+1:]...)
			a.PruneSecretSettings()
			return true
		}
	}
	return false
}

// SecretExpirationSettings returns the application-level expiration override,
// or nil when the application has none configured.
func (a *Application) SecretExpirationSettings() *secretsDomain.SecretExpirationSettings {
	if a.Settings == nil {
		return nil
	}
	return a.Settings.SecretExpiration
}
