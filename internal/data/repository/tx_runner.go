package repository

import (
	"context"
	"time"

	"event-booking/pkg/database"
)

// TxRunner binds a sequence of repository calls to one atomic unit. The open
// transaction travels in the context, so every repository method invoked
// inside fn runs on the same transaction and commits or aborts together.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	SetLockTimeout(ctx context.Context, d time.Duration) error
}

type txRunner struct {
	db database.PgxIface
}

func NewTxRunner(db database.PgxIface) TxRunner {
	return &txRunner{db: db}
}

func (t *txRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.WithTx(ctx, t.db, fn)
}

func (t *txRunner) SetLockTimeout(ctx context.Context, d time.Duration) error {
	return database.SetLockTimeout(ctx, d)
}
