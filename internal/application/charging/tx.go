package charging

import "context"

// TransactionManager runs a function within a single database transaction.
// Repository calls made with the context passed to fn join that transaction.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactionManager runs the function directly without a transaction.
// Useful for tests and for stores that do not support transactions.
type NopTransactionManager struct{}

// WithinTransaction invokes fn with the unchanged context
func (NopTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
