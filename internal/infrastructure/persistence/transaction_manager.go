package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TransactionManager runs multi-statement writes in a transaction, retrying
// on deadlock
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new TransactionManager
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction executes fn within a database transaction.
// The transaction is rolled back if fn returns an error or panics and
// committed otherwise.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback error: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithRetry is WithTransaction with up to maxRetries attempts on deadlock,
// backing off exponentially between attempts.
func (tm *TransactionManager) WithRetry(ctx context.Context, fn func(tx *sql.Tx) error, maxRetries int) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := tm.WithTransaction(ctx, fn)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isDeadlock(err) {
			return err
		}

		if attempt < maxRetries-1 {
			backoff := time.Millisecond * time.Duration(50*(1<<uint(attempt)))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return fmt.Errorf("transaction failed after %d retries: %w", maxRetries, lastErr)
}

func isDeadlock(err error) bool {
	n := mysqlErrNumber(err)
	return n == mysqlErrDeadlock || n == mysqlErrLockWait
}
