package persistence

import (
	"context"

	"github.com/MGTheTrain/bookshelf/internal/domain/transaction"

	"gorm.io/gorm"
)

type txKey struct{}

type gormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a Transactor backed by gorm transactions
func NewGormTransactor(db *gorm.DB) transaction.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction joins an enclosing transaction instead of nesting one.
// AfterCommit callbacks registered inside fn run once the outermost
// transaction has committed.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	ctx, runHooks := transaction.WithAfterCommit(ctx)
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err != nil {
		return err
	}
	runHooks()
	return nil
}

// conn returns the transaction carried by ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
