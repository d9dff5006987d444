package mysql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
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
			name: "duplicate entry",
			err:  &gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'users.name'"},
			want: errs.ErrKindConflict,
		},
		{
			name: "column cannot be null",
			err:  &gomysql.MySQLError{Number: 1048, Message: "Column 'name' cannot be null"},
			want: errs.ErrKindConflict,
		},
		{
			name: "foreign key child row",
			err:  &gomysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			want: errs.ErrKindConflict,
		},
		{
			name: "foreign key parent row",
			err:  &gomysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"},
			want: errs.ErrKindConflict,
		},
		{
			name: "access denied",
			err:  &gomysql.MySQLError{Number: 1045, Message: "Access denied for user"},
			want: errs.ErrKindConnectionFailed,
		},
		{
			name: "unknown database",
			err:  &gomysql.MySQLError{Number: 1049, Message: "Unknown database 'nope'"},
			want: errs.ErrKindConnectionFailed,
		},
		{
			name: "parse error",
			err:  &gomysql.MySQLError{Number: 1064, Message: "You have an error in your SQL syntax"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "unknown column",
			err:  &gomysql.MySQLError{Number: 1054, Message: "Unknown column 'nope'"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "no such table",
			err:  &gomysql.MySQLError{Number: 1146, Message: "Table 'db.nope' doesn't exist"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "other server error",
			err:  &gomysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"},
			want: errs.ErrKindQueryFailed,
		},
		{
			name: "no rows",
			err:  sql.ErrNoRows,
			want: errs.ErrKindNotFound,
		},
		{
			name: "deadline exceeded",
			err:  context.DeadlineExceeded,
			want: errs.ErrKindTimeout,
		},
		{
			name: "plain error",
			err:  errors.New("broken pipe"),
			want: errs.ErrKindUnknown,
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
