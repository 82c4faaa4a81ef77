// Package dto provides data transfer objects for the certificate credential HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/idforge/credentials/internal/validation"
)

// EnrollCertificateRequest contains the parameters for enrolling a certificate
// credential.
type EnrollCertificateRequest struct {
	Certificate string `json:"certificate"`
}

// Validate checks if the enroll certificate request is valid.
func (r *EnrollCertificateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Certificate,
			validation.Required,
			customValidation.NotBlank,
			customValidation.PEMBlock,
		),
	)
}
