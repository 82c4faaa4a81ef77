// Package service provides the hash encoder registry and secret generation for
// client secret credentials.
package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/idforge/credentials/internal/errors"
	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// Encoder transforms a raw secret into its stored representation and checks
// candidates against stored values.
type Encoder interface {
	// Encode produces the stored representation of a raw secret.
	Encode(raw string) (string, error)

	// Matches reports whether the raw candidate corresponds to the stored value.
	Matches(raw, stored string) bool
}

// plaintextEncoder stores the raw secret unchanged. Used for AlgorithmNone and
// for legacy secrets with no settings entry.
type plaintextEncoder struct{}

func (plaintextEncoder) Encode(raw string) (string, error) {
	return raw, nil
}

func (plaintextEncoder) Matches(raw, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(raw), []byte(stored)) == 1
}

// bcryptEncoder stores an irreversible bcrypt hash with a configurable cost.
type bcryptEncoder struct {
	cost int
}

func (e bcryptEncoder) Encode(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), e.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash secret")
	}
	return string(hash), nil
}

func (e bcryptEncoder) Matches(raw, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw)) == nil
}

// sha512Encoder is a legacy one-way hash retained for backward validation of
// secrets migrated from older deployments. Never used for new secrets.
type sha512Encoder struct{}

func (sha512Encoder) Encode(raw string) (string, error) {
	sum := sha512.Sum512([]byte(raw))
	return hex.EncodeToString(sum[:]), nil
}

func (e sha512Encoder) Matches(raw, stored string) bool {
	encoded, err := e.Encode(raw)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(stored)) == 1
}

// newEncoder constructs an encoder for the given settings entry.
func newEncoder(settings *secretsDomain.SecretSettings) (Encoder, error) {
	switch settings.Algorithm {
	case secretsDomain.AlgorithmNone:
		return plaintextEncoder{}, nil
	case secretsDomain.AlgorithmBCrypt:
		return bcryptEncoder{cost: bcryptCost(settings.Parameters)}, nil
	case secretsDomain.AlgorithmSHA512:
		return sha512Encoder{}, nil
	default:
		return nil, apperrors.Wrap(secretsDomain.ErrUnknownAlgorithm, string(settings.Algorithm))
	}
}

// bcryptCost reads the "rounds" parameter, falling back to the bcrypt default
// when the parameter is missing or out of range.
func bcryptCost(parameters map[string]string) int {
	rounds, err := strconv.Atoi(parameters["rounds"])
	if err != nil || rounds < bcrypt.MinCost || rounds > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return rounds
}
