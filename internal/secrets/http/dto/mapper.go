package dto

import (
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// ToNewClientSecret converts the create request to the use case input.
func ToNewClientSecret(req CreateClientSecretRequest) *secretsDomain.NewClientSecret {
	return &secretsDomain.NewClientSecret{Name: req.Name}
}
