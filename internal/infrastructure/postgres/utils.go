package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

// SQLSTATE relevantes.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translateError convierte errores de pgx en errores del dominio.
// 23505 → ErrDuplicate, 23503 → ErrReferenced, otro PgError → StoreError con su detalle.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	detail := pgErr.Detail
	if detail == "" {
		detail = pgErr.Message
	}
	se := &domain.StoreError{Code: pgErr.Code, Detail: detail, Err: fmt.Errorf("%s: %w", op, err)}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %w", domain.ErrDuplicate, se)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %w", domain.ErrReferenced, se)
	}
	return se
}

// noRows (nil, nil) si la consulta no devolvió filas.
func noRows[T any](v *T, op string, err error) (*T, error) {
	if err == nil {
		return v, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return nil, translateError(op, err)
}

// scanFunc lee una fila; pgx.Row y pgx.Rows la satisfacen.
type scanFunc[T any] func(row pgx.Row) (*T, error)

func collect[T any](rows pgx.Rows, scan scanFunc[T]) ([]*T, error) {
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func pageArgs(page repository.Page) (limit, offset int) {
	limit, offset = page.Limit, page.Offset
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
