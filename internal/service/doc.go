// Package service contains the application's business rules. It orchestrates
// domain entities, the persistence contracts from internal/store, and the
// credential and ownership helpers from internal/service/auth to implement
// account management: creation, lookup, paginated listing, and owner-only
// update and deletion.
//
// Services receive their collaborators through constructor injection and hold
// no mutable state of their own; all durable state lives behind the store
// interfaces. Mutating operations run their check-then-write sequence inside
// a single database transaction.
package service
