package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	secretsDomain "github.com/idforge/credentials/internal/secrets/domain"
)

// TestApplication_EnsureSecretSettings tests settings de-duplication by value.
func TestApplication_EnsureSecretSettings(t *testing.T) {
	t.Run("Success_ReusesEntryWithSameValue", func(t *testing.T) {
		existing := secretsDomain.SecretSettings{
			ID:         uuid.Must(uuid.NewV7()),
			Algorithm:  secretsDomain.AlgorithmBCrypt,
			Parameters: map[string]string{"rounds": "10"},
		}
		application := &Application{SecretSettings: []secretsDomain.SecretSettings{existing}}

		candidate := secretsDomain.SecretSettings{
			ID:         uuid.Must(uuid.NewV7()),
			Algorithm:  secretsDomain.AlgorithmBCrypt,
			Parameters: map[string]string{"rounds": "10"},
		}

		result := application.EnsureSecretSettings(candidate)

		assert.Equal(t, existing.ID, result.ID)
		assert.Len(t, application.SecretSettings, 1)
	})

	t.Run("Success_AppendsEntryWithDifferentValue", func(t *testing.T) {
		existing := secretsDomain.SecretSettings{
			ID:         uuid.Must(uuid.NewV7()),
			Algorithm:  secretsDomain.AlgorithmBCrypt,
			Parameters: map[string]string{"rounds": "10"},
		}
		application := &Application{SecretSettings: []secretsDomain.SecretSettings{existing}}

		candidate := secretsDomain.SecretSettings{
			ID:         uuid.Must(uuid.NewV7()),
			Algorithm:  secretsDomain.AlgorithmBCrypt,
			Parameters: map[string]string{"rounds": "12"},
		}

		result := application.EnsureSecretSettings(candidate)

		assert.Equal(t, candidate.ID, result.ID)
		require.Len(t, application.SecretSettings, 2)
		assert.Equal(t, candidate.ID, application.SecretSettings[1].ID)
	})
}

// TestApplication_CurrentSecretSettings tests that new secrets use the newest entry.
func TestApplication_CurrentSecretSettings(t *testing.T) {
	t.Run("Success_ReturnsNewestEntry", func(t *testing.T) {
		older := secretsDomain.SecretSettings{ID: uuid.Must(uuid.NewV7()), Algorithm: secretsDomain.AlgorithmNone}
		newer := secretsDomain.SecretSettings{ID: uuid.Must(uuid.NewV7()), Algorithm: secretsDomain.AlgorithmBCrypt}
		application := &Application{SecretSettings: []secretsDomain.SecretSettings{older, newer}}

		current := application.CurrentSecretSettings()

		require.NotNil(t, current)
		assert.Equal(t, newer.ID, current.ID)
	})

	t.Run("Success_ReturnsNilWithoutEntries", func(t *testing.T) {
		application := &Application{}

		assert.Nil(t, application.CurrentSecretSettings())
	})
}

// TestApplication_RemoveSecret tests secret removal with settings pruning.
func TestApplication_RemoveSecret(t *testing.T) {
	t.Run("Success_RemovesSecretAndUnreferencedSettings", func(t *testing.T) {
		sharedSettings := secretsDomain.SecretSettings{ID: uuid.Must(uuid.NewV7()), Algorithm: secretsDomain.AlgorithmBCrypt}
		soloSettings := secretsDomain.SecretSettings{ID: uuid.Must(uuid.NewV7()), Algorithm: secretsDomain.AlgorithmNone}

		keptSecret := secretsDomain.ClientSecret{ID: uuid.Must(uuid.NewV7()), SettingsID: sharedSettings.ID}
		removedSecret := secretsDomain.ClientSecret{ID: uuid.Must(uuid.NewV7()), SettingsID: soloSettings.ID}

		application := &Application{
			Secrets:        []secretsDomain.ClientSecret{keptSecret, removedSecret},
			SecretSettings: []secretsDomain.SecretSettings{sharedSettings, soloSettings},
		}

		removed := application.RemoveSecret(removedSecret.ID)

		assert.True(t, removed)
		require.Len(t, application.Secrets, 1)
		assert.Equal(t, keptSecret.ID, application.Secrets[0].ID)
		require.Len(t, application.SecretSettings, 1)
		assert.Equal(t, sharedSettings.ID, application.SecretSettings[0].ID)
	})

	t.Run("Success_KeepsSettingsStillReferenced", func(t *testing.T) {
		settings := secretsDomain.SecretSettings{ID: uuid.Must(uuid.NewV7()), Algorithm: secretsDomain.AlgorithmBCrypt}
		first := secretsDomain.ClientSecret{ID: uuid.Must(uuid.NewV7()), SettingsID: settings.ID}
		second := secretsDomain.ClientSecret{ID: uuid.Must(uuid.NewV7()), SettingsID: settings.ID}

		application := &Application{
			Secrets:        []secretsDomain.ClientSecret{first, second},
			SecretSettings: []secretsDomain.SecretSettings{settings},
		}

		assert.True(t, application.RemoveSecret(first.ID))
		assert.Len(t, application.SecretSettings, 1)
	})

	t.Run("Error_UnknownSecretID", func(t *testing.T) {
		application := &Application{}

		assert.False(t, application.RemoveSecret(uuid.Must(uuid.NewV7())))
	})
}

// TestApplication_SecretExpirationSettings tests the settings accessor.
func TestApplication_SecretExpirationSettings(t *testing.T) {
	t.Run("Success_NilWithoutSettings", func(t *testing.T) {
		application := &Application{}

		assert.Nil(t, application.SecretExpirationSettings())
	})

	t.Run("Success_ReturnsConfiguredOverride", func(t *testing.T) {
		expiration := &secretsDomain.SecretExpirationSettings{Enabled: true, ExpiryTimeSeconds: 60}
		application := &Application{Settings: &ApplicationSettings{SecretExpiration: expiration}}

		assert.Equal(t, expiration, application.SecretExpirationSettings())
	})
}
