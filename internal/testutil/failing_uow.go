package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/dferrell/cadence/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction fails on the Nth write.
// Rollback tests use it to break multi-row saves partway through. Writes are
// counted from 1; reads pass through uncounted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if fnErr := fn(ctx, &countingExec{DBTX: tx, failOn: u.FailOn, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type countingExec struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (c *countingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.writes.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
