package dto

import (
	"time"

	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// ClientSecretResponse is the metadata projection of a client secret. The
// stored secret value is never included.
type ClientSecretResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SettingsID string     `json:"settings_id"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// CreateClientSecretResponse is returned from create and renew operations.
// Secret carries the plaintext value and is only ever returned here.
type CreateClientSecretResponse struct {
	ClientSecretResponse
	Secret string `json:"secret"`
}

// ClientSecretListResponse wraps the secrets of an application.
type ClientSecretListResponse struct {
	Secrets []ClientSecretResponse `json:"secrets"`
}

// ValidateSecretResponse reports whether a candidate secret matched.
type ValidateSecretResponse struct {
	Valid bool `json:"valid"`
}

// MapClientSecretToResponse converts a domain client secret to its API projection.
func MapClientSecretToResponse(secret *secretsDomain.ClientSecret) ClientSecretResponse {
	return ClientSecretResponse{
		ID:         secret.ID.String(),
		Name:       secret.Name,
		SettingsID: secret.SettingsID.String(),
		CreatedAt:  secret.CreatedAt,
		ExpiresAt:  secret.ExpiresAt,
	}
}

// MapClientSecretListToResponse converts domain client secrets to the list projection.
func MapClientSecretListToResponse(secrets []secretsDomain.ClientSecret) ClientSecretListResponse {
	response := ClientSecretListResponse{Secrets: make([]ClientSecretResponse, 0, len(secrets))}
	for i := range secrets {
		response.Secrets = append(response.Secrets, MapClientSecretToResponse(&secrets[i]))
	}
	return response
}
