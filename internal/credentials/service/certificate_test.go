package service

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	credentialsDomain "github.com/idforge/credentials/internal/credentials/domain"
)

// newTestCertificate builds a self-signed PEM certificate valid until notAfter.
func newTestCertificate(t *testing.T, notAfter time.Time) (string, []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(42),
		Subject:      pkix.Name{CommonName: "test-user", Organization: []string{"idforge"}},
		NotBefore:    notAfter.Add(-24 * time.Hour),
		NotAfter:     notAfter,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	return string(pemBytes), der
}

// TestParseCertificate tests PEM parsing and field extraction.
func TestParseCertificate(t *testing.T) {
	t.Run("Success_ExtractsFields", func(t *testing.T) {
		notAfter := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
		pemCertificate, der := newTestCertificate(t, notAfter)

		parsed, err := ParseCertificate(pemCertificate)
		require.NoError(t, err)

		sum := sha256.Sum256(der)
		assert.Equal(t, hex.EncodeToString(sum[:]), parsed.Thumbprint)
		assert.Contains(t, parsed.SubjectDN, "CN=test-user")
		assert.Contains(t, parsed.IssuerDN, "CN=test-user")
		assert.Equal(t, "42", parsed.SerialNumber)
		assert.True(t, parsed.NotAfter.Equal(notAfter))
	})

	t.Run("Error_NotPEM", func(t *testing.T) {
		_, err := ParseCertificate("not a certificate")

		assert.ErrorIs(t, err, credentialsDomain.ErrInvalidCertificate)
	})

	t.Run("Error_WrongBlockType", func(t *testing.T) {
		block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte("bogus")})

		_, err := ParseCertificate(string(block))

		assert.ErrorIs(t, err, credentialsDomain.ErrInvalidCertificate)
	})

	t.Run("Error_CorruptedDER", func(t *testing.T) {
		block := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: []byte("bogus")})

		_, err := ParseCertificate(string(block))

		assert.ErrorIs(t, err, credentialsDomain.ErrInvalidCertificate)
	})
}

// TestParsedCertificate_Expired tests the validity boundary.
func TestParsedCertificate_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success_ValidCertificate", func(t *testing.T) {
		parsed := &ParsedCertificate{NotAfter: now.Add(time.Hour)}

		assert.False(t, parsed.Expired(now))
	})

	t.Run("Success_ExpiredCertificate", func(t *testing.T) {
		parsed := &ParsedCertificate{NotAfter: now.Add(-time.Hour)}

		assert.True(t, parsed.Expired(now))
	})

	t.Run("Success_BoundaryInstantCountsAsExpired", func(t *testing.T) {
		parsed := &ParsedCertificate{NotAfter: now}

		assert.True(t, parsed.Expired(now))
	})
}
