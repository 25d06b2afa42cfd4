package persistence

import (
	"context"

	"gorm.io/gorm"
)

// txKey carries an in-flight transaction through the context.
type txKey struct{}

// GormTransactionManager runs application use cases inside a gorm transaction.
// The transaction handle travels through the context so that repositories
// participating in the same use case share it transparently.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a transaction manager backed by the given database
func NewGormTransactionManager(db *Database) *GormTransactionManager {
	return &GormTransactionManager{db: db.DB}
}

// WithinTransaction executes fn inside a single database transaction.
// If the context already carries a transaction, fn joins it instead of
// opening a nested one.
func (m *GormTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transaction bound to ctx, or the fallback handle
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
