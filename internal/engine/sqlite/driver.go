package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
)

// Driver is a SQLite implementation of engine.Engine backed by database/sql
// and mattn/go-sqlite3. It is safe for concurrent use by multiple goroutines.
type Driver struct {
	db *sql.DB
}

// New opens a SQLite database using the provided Config and returns a Driver.
// It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *engine.Config) (*Driver, error) {
	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid DSN", err)
	}

	if cfg.DSN == ":memory:" {
		// Each pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(int(cfg.MaxConns))
		db.SetMaxIdleConns(int(cfg.MinConns))
		db.SetConnMaxLifetime(cfg.MaxConnLifetime)
		db.SetConnMaxIdleTime(cfg.MaxConnIdleTime)
	}

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
	return engine.DialectSQLite
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
	return &sqliteRows{rows: rows}, nil
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

type sqliteRows struct {
	rows *sql.Rows
}

func (r *sqliteRows) Next() bool                 { return r.rows.Next() }
func (r *sqliteRows) Scan(dest ...any) error     { return r.rows.Scan(dest...) }
func (r *sqliteRows) Columns() ([]string, error) { return r.rows.Columns() }
func (r *sqliteRows) Close()                     { _ = r.rows.Close() }
func (r *sqliteRows) Err() error                 { return r.rows.Err() }

// --- error mapping ---

// mapError translates mattn/go-sqlite3 errors into *errs.Error.
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

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return errs.Wrap(errs.ErrKindConflict, "constraint violation", err)
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrAuth, sqlite3.ErrPerm:
			return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return errs.Wrap(errs.ErrKindTimeout, msg, err)
		default:
			return errs.Wrap(errs.ErrKindQueryFailed, msg, err)
		}
	}

	return errs.Wrap(errs.ErrKindUnknown, msg, err)
}
