package pgx

import (
	"context"
	"errors"

	"github.com/loreforge/loreforge/backend/pkg/graph"
	"github.com/loreforge/loreforge/backend/pkg/store"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
	BeginTx(ctx context.Context, txOptions pgxv5.TxOptions) (pgxv5.Tx, error)
}

// GraphStore implements store.Storage on PostgreSQL. The campaign graph is
// kept as two tables, nodes and edges; every public method runs as exactly
// one transaction and every internal helper takes the transaction handle as
// an explicit parameter.
type GraphStore struct {
	conn pgxIConn
}

var _ store.Storage = (*GraphStore)(nil)

// NewGraphStore creates a GraphStore on an existing connection or pool.
func NewGraphStore(conn pgxIConn) *GraphStore {
	return &GraphStore{conn: conn}
}

// ReadTx runs fn inside a single read-only transaction. The snapshot fn sees
// is consistent for its whole lifetime.
func (s *GraphStore) ReadTx(ctx context.Context, fn func(tx pgxv5.Tx) error) error {
	return s.runTx(ctx, pgxv5.TxOptions{AccessMode: pgxv5.ReadOnly}, fn)
}

// WriteTx runs fn inside a single read-write transaction. If fn returns an
// error the transaction is rolled back and nothing fn did is visible outside.
func (s *GraphStore) WriteTx(ctx context.Context, fn func(tx pgxv5.Tx) error) error {
	return s.runTx(ctx, pgxv5.TxOptions{}, fn)
}

func (s *GraphStore) runTx(ctx context.Context, opts pgxv5.TxOptions, fn func(tx pgxv5.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, opts)
	if err != nil {
		return graph.NewStoreError("begin transaction", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return wrapStoreErr("transaction", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return graph.NewStoreError("commit transaction", err)
	}
	return nil
}

// wrapStoreErr passes domain sentinels through untouched and wraps anything
// else as an infrastructure failure, so callers can tell retryable store
// trouble apart from permanent rule violations.
func wrapStoreErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		graph.ErrNotFound,
		graph.ErrUnauthenticated,
		graph.ErrForbidden,
		graph.ErrDuplicate,
		graph.ErrHasDependents,
		graph.ErrOnlyOwner,
		graph.ErrInvalidInput,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if graph.IsStoreError(err) {
		return err
	}
	return graph.NewStoreError(op, err)
}
