package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier est commun au pool et à une transaction ouverte
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) error
}

type Transaction struct {
	tx     pgx.Tx
	closed bool
}

type TransactionManager struct {
	client *Client
}

type TxFunc func(tx Querier) error

func NewTransactionManager(client *Client) *TransactionManager {
	return &TransactionManager{
		client: client,
	}
}

func (tm *TransactionManager) WithTransaction(ctx context.Context, fn TxFunc) error {
	if tm.client.pool == nil {
		return fmt.Errorf("database pool is nil")
	}

	pgxTx, err := tm.client.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	tx := &Transaction{tx: pgxTx}

	// Rollback si fn échoue ou panique; sans effet après Commit
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (t *Transaction) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	if t.closed {
		return nil, fmt.Errorf("transaction is closed")
	}
	return t.tx.Query(ctx, sql, args...)
}

func (t *Transaction) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	// L'erreur d'une transaction fermée remonte au Scan
	if t.closed {
		return &closedTxRow{err: fmt.Errorf("transaction is closed")}
	}
	return t.tx.QueryRow(ctx, sql, args...)
}

func (t *Transaction) Exec(ctx context.Context, sql string, args ...interface{}) error {
	if t.closed {
		return fmt.Errorf("transaction is closed")
	}
	_, err := t.tx.Exec(ctx, sql, args...)
	return err
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.closed {
		return fmt.Errorf("transaction is already closed")
	}

	err := t.tx.Commit(ctx)
	t.closed = true
	return err
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.closed {
		return nil
	}

	err := t.tx.Rollback(ctx)
	t.closed = true
	return err
}

type closedTxRow struct {
	err error
}

func (r *closedTxRow) Scan(dest ...interface{}) error {
	return r.err
}
