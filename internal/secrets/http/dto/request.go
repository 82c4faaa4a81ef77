// Package dto provides data transfer objects for the client secret HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/idforge/credentials/internal/validation"
)

// CreateClientSecretRequest contains the parameters for creating a new client secret.
type CreateClientSecretRequest struct {
	Name string `json:"name"`
}

// Validate checks if the create client secret request is valid.
func (r *CreateClientSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// ValidateSecretRequest contains a candidate secret to check against the
// application's registered secrets.
type ValidateSecretRequest struct {
	Secret string `json:"secret"`
}

// Validate checks if the validate secret request is valid.
func (r *ValidateSecretRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Secret,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}
