package domain

import (
	"github.com/idforge/credentials/internal/errors"
)

// Client secret error definitions.
var (
	// ErrClientSecretNotFound indicates no secret with the specified ID exists
	// on the application.
	ErrClientSecretNotFound = errors.Wrap(errors.ErrNotFound, "client secret not found")

	// ErrLastClientSecret indicates an attempt to delete the application's last
	// remaining secret. An application always keeps at least one secret.
	ErrLastClientSecret = errors.Wrap(errors.ErrConflict, "cannot delete the last client secret")

	// ErrUnknownAlgorithm indicates a settings entry references an unsupported
	// hash algorithm identifier.
	ErrUnknownAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unknown secret hash algorithm")

	// ErrSettingsNotFound indicates a secret references a settings entry that is
	// missing from the owning application.
	ErrSettingsNotFound = errors.Wrap(errors.ErrNotFound, "secret settings not found")
)
