package auth

// OwnershipChecker decides whether an acting principal may mutate a given
// account. This is deliberately the only authorization rule in the system:
// self-service only, no administrative override, no delegation.
type OwnershipChecker interface {
	// IsOwner reports whether the acting principal owns the account with the
	// given username. An empty principal never owns anything.
	IsOwner(actingPrincipal, accountUsername string) bool
}

// UsernameOwnershipChecker implements OwnershipChecker by exact,
// case-sensitive string equality between the principal's identity and the
// target account's username.
type UsernameOwnershipChecker struct{}

// NewUsernameOwnershipChecker creates a new UsernameOwnershipChecker.
func NewUsernameOwnershipChecker() *UsernameOwnershipChecker {
	return &UsernameOwnershipChecker{}
}

// IsOwner implements the OwnershipChecker interface.
func (c *UsernameOwnershipChecker) IsOwner(actingPrincipal, accountUsername string) bool {
	return actingPrincipal != "" && actingPrincipal == accountUsername
}
