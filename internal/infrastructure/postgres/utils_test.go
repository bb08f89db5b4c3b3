package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))

	dup := translateError("insert customer", &pgconn.PgError{Code: "23505", Detail: "Key (tax_id)=(1) already exists."})
	assert.ErrorIs(t, dup, domain.ErrDuplicate)
	assert.ErrorIs(t, dup, domain.ErrConflict)
	detail, ok := domain.StoreDetail(dup)
	require.True(t, ok)
	assert.Equal(t, "Key (tax_id)=(1) already exists.", detail)

	fk := translateError("delete customer", &pgconn.PgError{Code: "23503", Message: "violates foreign key"})
	assert.ErrorIs(t, fk, domain.ErrReferenced)
	detail, _ = domain.StoreDetail(fk)
	assert.Equal(t, "violates foreign key", detail, "sin Detail se usa Message")

	other := translateError("insert", &pgconn.PgError{Code: "22P02", Message: "invalid input syntax"})
	assert.False(t, errors.Is(other, domain.ErrConflict))
	_, ok = domain.StoreDetail(other)
	assert.True(t, ok)

	plain := translateError("insert", errors.New("conn reset"))
	_, ok = domain.StoreDetail(plain)
	assert.False(t, ok)
	assert.ErrorContains(t, plain, "insert: conn reset")
}

func TestNoRows(t *testing.T) {
	v, err := noRows[int](nil, "get", pgx.ErrNoRows)
	assert.NoError(t, err)
	assert.Nil(t, v)

	n := 3
	v, err = noRows(&n, "get", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, *v)
}

func TestPageArgs(t *testing.T) {
	l, o := pageArgs(repository.Page{})
	assert.Equal(t, 10, l)
	assert.Equal(t, 0, o)
	l, o = pageArgs(repository.Page{Limit: 50, Offset: -1})
	assert.Equal(t, 50, l)
	assert.Equal(t, 0, o)
}
