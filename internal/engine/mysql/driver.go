package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
)

// Driver is a MySQL implementation of engine.Engine backed by database/sql.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	db *sql.DB
}

// New opens a MySQL connection pool using the provided Config and returns a
// Driver. It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *engine.Config) (*Driver, error) {
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid DSN", err)
	}

	db.SetMaxOpenConns(int(cfg.MaxConns))
	db.SetMaxIdleConns(int(cfg.MinConns))
	db.SetConnMaxLifetime(cfg.MaxConnLifetime)
	db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	d := &Driver{db: db}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := d.Ping(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return d, nil
}

// --- engine.Engine implementation ---

func (d *Driver) Dialect() engine.Dialect {
	return engine.DialectMySQL
}

func (d *Driver) Ping(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

func (d *Driver) Close() {
	_ = d.db.Close()
}

func (d *Driver) Query(ctx context.Context, query string) (engine.Rows, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err, "query failed")
	}
	return &mysqlRows{rows: rows}, nil
}

func (d *Driver) Exec(ctx context.Context, query string) (int64, error) {
	res, err := d.db.ExecContext(ctx, query)
	if err != nil {
		return 0, mapError(err, "statement failed")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, mapError(err, "failed to read affected row count")
	}
	return affected, nil
}

func (d *Driver) Insert(ctx context.Context, query string) (int64, error) {
	res, err := d.db.ExecContext(ctx, query)
	if err != nil {
		return 0, mapError(err, "insert failed")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, mapError(err, "failed to read generated key")
	}
	return id, nil
}

// --- sql.DB type wrappers ---

type mysqlRows struct {
	rows *sql.Rows
}

func (r *mysqlRows) Next() bool                 { return r.rows.Next() }
func (r *mysqlRows) Scan(dest ...any) error     { return r.rows.Scan(dest...) }
func (r *mysqlRows) Columns() ([]string, error) { return r.rows.Columns() }
func (r *mysqlRows) Close()                     { _ = r.rows.Close() }
func (r *mysqlRows) Err() error                 { return r.rows.Err() }

// --- error mapping ---

// MySQL error numbers.
// Full list: https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	errDuplicateEntry     = 1062
	errColumnCannotBeNull = 1048
	errNoReferencedRow    = 1452
	errRowIsReferenced    = 1451
	errParseError         = 1064
	errBadFieldError      = 1054
	errNoSuchTable        = 1146
	errAccessDenied       = 1045
	errUnknownDatabase    = 1049
)

// mapError translates go-sql-driver/mysql errors into *errs.Error.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	}

	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case errDuplicateEntry, errColumnCannotBeNull, errNoReferencedRow, errRowIsReferenced:
			return errs.Wrap(errs.ErrKindConflict,
				fmt.Sprintf("constraint violation: %s", mysqlErr.Message), err)
		case errAccessDenied, errUnknownDatabase:
			return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
		case errParseError, errBadFieldError, errNoSuchTable:
			return errs.Wrap(errs.ErrKindQueryFailed,
				fmt.Sprintf("%s: %s", msg, mysqlErr.Message), err)
		default:
			return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
		}
	}

	return errs.Wrap(errs.ErrKindUnknown, msg, err)
}
