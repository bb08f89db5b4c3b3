package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transacción de escritura: Commit si fn no falla, Rollback en otro caso.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// ReadOnly transacción REPEATABLE READ de solo lectura: count y página ven el mismo snapshot.
func (r *TxRunner) ReadOnly(ctx context.Context, fn func(q Querier) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(q Querier) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// listPage cuenta y lee la página en el mismo snapshot.
func listPage[T any](ctx context.Context, tx *TxRunner, table, columns, orderBy string, page repository.Page, scan scanFunc[T]) ([]*T, int, error) {
	limit, offset := pageArgs(page)
	var (
		items []*T
		total int
	)
	err := tx.ReadOnly(ctx, func(q Querier) error {
		if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&total); err != nil {
			return translateError("count "+table, err)
		}
		rows, err := q.Query(ctx,
			fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC LIMIT $1 OFFSET $2", columns, table, orderBy),
			limit, offset)
		if err != nil {
			return translateError("list "+table, err)
		}
		items, err = collect(rows, scan)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// listAll lee la tabla completa ordenada por la clave descendente.
func listAll[T any](ctx context.Context, q Querier, table, columns, orderBy string, scan scanFunc[T]) ([]*T, error) {
	rows, err := q.Query(ctx, fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC", columns, table, orderBy))
	if err != nil {
		return nil, translateError("list "+table, err)
	}
	return collect(rows, scan)
}

func count(ctx context.Context, q Querier, table string) (int, error) {
	var n int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, translateError("count "+table, err)
	}
	return n, nil
}
