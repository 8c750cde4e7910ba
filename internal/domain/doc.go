// Package domain contains the core business entities and domain logic of
// the accounts service, independent of any specific infrastructure or
// delivery mechanism.
package domain
