package domain

import (
	"github.com/google/uuid"
)

// ResolvePasswordPolicy cascades the password policy selection: an identity
// provider pinned policy wins, else the application-level override applies
// unless it is explicitly marked inherited, else the domain default. Returns
// nil when no layer selects a policy.
//
// Same precedence pattern as the secret expiration cascade.
func ResolvePasswordPolicy(
	identityProviderPolicyID *uuid.UUID,
	applicationPolicy *PasswordPolicySettings,
	domainPolicyID *uuid.UUID,
) *uuid.UUID {
	if identityProviderPolicyID != nil {
		return identityProviderPolicyID
	}
	if applicationPolicy != nil && !applicationPolicy.Inherited && applicationPolicy.PolicyID != nil {
		return applicationPolicy.PolicyID
	}
	return domainPolicyID
}
