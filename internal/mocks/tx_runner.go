package mocks

import (
	"context"

	"github.com/jsvoboda/accounts-api/internal/store"
)

// TxRunner is a pass-through store.TxRunner for tests: it invokes the
// function immediately with a nil transaction and no database involved.
// Combined with AccountStore.WithTx returning the mock itself, service
// transaction bodies run directly against the configured expectations.
type TxRunner struct{}

var _ store.TxRunner = (*TxRunner)(nil)

// RunInTransaction implements the store.TxRunner interface.
func (r *TxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	return fn(ctx, nil)
}
