package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/koustreak/EasySQL/internal/errs"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.ErrKind
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			want: errs.ErrKindConflict,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			want: errs.ErrKindConflict,
		},
		{
			name: "not null violation",
			err:  &pgconn.PgError{Code: "23502", Message: "null value in column"},
			want: errs.ErrKindConflict,
		},
		{
			name: "connection failure",
			err:  &pgconn.PgError{Code: "08006", Message: "connection failure"},
			want: errs.ErrKindConnectionFailed,
		},
		{
			name: "syntax error",
			err:  &pgconn.PgError{Code: "42601", Message: "syntax error at or near"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "undefined table",
			err:  &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "no rows",
			err:  pgx.ErrNoRows,
			want: errs.ErrKindNotFound,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: errs.ErrKindTimeout,
		},
		{
			name: "canceled",
			err:  context.Canceled,
			want: errs.ErrKindTimeout,
		},
		{
			name: "network error falls back to connection failed",
			err:  errors.New("dial tcp: connection refused"),
			want: errs.ErrKindConnectionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err, "test")
			assert.Equal(t, tt.want, mapped.Kind)
			assert.True(t, errors.Is(mapped, tt.err), "cause must be preserved")
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, mapError(nil, "test"))
}
