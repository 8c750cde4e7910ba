// Package postgres implements the persistence contracts from internal/store
// on PostgreSQL. It handles query execution, mapping between domain entities
// and table rows, and translation of driver errors into store errors.
package postgres
