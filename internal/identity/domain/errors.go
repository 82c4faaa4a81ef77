package domain

import (
	"github.com/idforge/credentials/internal/errors"
)

// Identity aggregate errors.
var (
	// ErrDomainNotFound indicates a security domain with the specified ID was not found.
	ErrDomainNotFound = errors.Wrap(errors.ErrNotFound, "domain not found")

	// ErrApplicationNotFound indicates an application with the specified ID was not found.
	ErrApplicationNotFound = errors.Wrap(errors.ErrNotFound, "application not found")

	// ErrUserNotFound indicates a user with the specified ID was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
)
