// Package store defines the persistence contracts consumed by the service
// layer. The interfaces abstract the underlying storage engine so the
// business rules stay independent of any specific database technology.
package store
