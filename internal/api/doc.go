// Package api implements the HTTP transport layer of the accounts service:
// request and response models, handlers, and the central mapping from
// service errors to HTTP status codes. Projection between wire models and
// the domain Account entity lives here; the service layer speaks only in
// entities and plain scalar parameters.
package api
