package domain

import (
	"time"
)

// ExpirationLayer pairs a configuration scope with its expiration settings.
// Layers are evaluated in order; the first enabled layer with a positive expiry
// wins. A zero expiry disables a layer instead of erroring, so an application
// layer with zero seconds falls through to the domain layer.
type ExpirationLayer struct {
	Scope    string
	Settings *SecretExpirationSettings
}

// ResolveExpiry cascades the expiration policy across the application and
// domain layers into an effective expiration instant. Returns nil when no
// layer applies (the secret never expires).
func ResolveExpiry(createdAt time.Time, domainSettings, applicationSettings *SecretExpirationSettings) *time.Time {
	return ResolveExpiryLayers(createdAt, []ExpirationLayer{
		{Scope: "application", Settings: applicationSettings},
		{Scope: "domain", Settings: domainSettings},
	})
}

// ResolveExpiryLayers applies the precedence rule over an explicit, ordered
// list of layers (most specific first).
func ResolveExpiryLayers(createdAt time.Time, layers []ExpirationLayer) *time.Time {
	for _, layer := range layers {
		s := layer.Settings
		if s == nil || !s.Enabled || s.ExpiryTimeSeconds <= 0 {
			continue
		}
		expiresAt := createdAt.Add(time.Duration(s.ExpiryTimeSeconds) * time.Second)
		return &expiresAt
	}
	return nil
}
