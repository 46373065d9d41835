package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go-talent-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx is the subset of pgx.Tx the executor drives.
type Tx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Conn is one exclusive pooled connection.
type Conn interface {
	Begin(ctx context.Context) (Tx, error)
	Release()
}

// Pool hands out exclusive connections.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

type pgxPool struct {
	pool *pgxpool.Pool
}

// PoolFrom adapts a pgx pool to Pool.
func PoolFrom(pool *pgxpool.Pool) Pool {
	return pgxPool{pool: pool}
}

func (p pgxPool) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return pgxConn{conn: conn}, nil
}

type pgxConn struct {
	conn *pgxpool.Conn
}

func (c pgxConn) Begin(ctx context.Context) (Tx, error) {
	return c.conn.Begin(ctx)
}

func (c pgxConn) Release() {
	c.conn.Release()
}

// Executor runs statement batches atomically, one connection per batch.
// It never retries and never overrides the store's isolation level.
type Executor struct {
	pool Pool
	log  *slog.Logger
}

func NewExecutor(pool Pool, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{pool: pool, log: log}
}

// Execute runs batch inside a single transaction. Any failure rolls the
// whole batch back and is returned as *apperror.TransactionError wrapping
// the first underlying error. The connection is released on every path.
func (e *Executor) Execute(ctx context.Context, batch Batch) error {
	if len(batch) == 0 {
		return nil
	}

	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return &apperror.TransactionError{Statement: -1, Err: fmt.Errorf("acquire connection: %w", err)}
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return &apperror.TransactionError{Statement: -1, Err: fmt.Errorf("begin: %w", err)}
	}

	committed := false
	defer func() {
		if !committed {
			e.rollback(ctx, tx)
		}
	}()

	for i, stmt := range batch {
		e.log.Debug("executing statement", "position", i, "query", stmt.Query, "params", len(stmt.Params))
		if _, err := tx.Exec(ctx, stmt.Query, stmt.Params...); err != nil {
			return &apperror.TransactionError{Statement: i, Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &apperror.TransactionError{Statement: -1, Err: fmt.Errorf("commit: %w", err)}
	}
	committed = true

	e.log.Debug("transaction committed", "statements", len(batch))
	return nil
}

// rollback failures are logged only; the original error is what callers see.
func (e *Executor) rollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		e.log.Error("rollback failed", "error", err)
	}
}
