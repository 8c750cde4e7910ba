// Package main implements the entry point for the accounts API server,
// a small user-account management service with self-service-only
// authorization.
package main

import (
	"context"
	"log"
)

// main loads configuration, wires the application together and runs the
// HTTP server until it is signalled to stop.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
