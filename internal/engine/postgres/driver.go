package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/koustreak/EasySQL/internal/engine"
	"github.com/koustreak/EasySQL/internal/errs"
)

// Driver is a PostgreSQL implementation of engine.Engine backed by pgxpool.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL using the provided Config and returns a Driver.
// It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *engine.Config) (*Driver, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "invalid DSN", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "failed to create connection pool", err)
	}

	d := &Driver{pool: pool}

	if err := d.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return d, nil
}

// --- engine.Engine implementation ---

func (d *Driver) Dialect() engine.Dialect {
	return engine.DialectPostgres
}

// Ping verifies the database is reachable by acquiring and releasing a connection.
func (d *Driver) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close drains the connection pool. Call when the application shuts down.
func (d *Driver) Close() {
	d.pool.Close()
}

func (d *Driver) Query(ctx context.Context, sql string) (engine.Rows, error) {
	rows, err := d.pool.Query(ctx, sql)
	if err != nil {
		return nil, mapError(err, "query failed")
	}
	return &pgxRows{rows: rows}, nil
}

func (d *Driver) Exec(ctx context.Context, sql string) (int64, error) {
	tag, err := d.pool.Exec(ctx, sql)
	if err != nil {
		return 0, mapError(err, "statement failed")
	}
	return tag.RowsAffected(), nil
}

// Insert executes an INSERT and returns the key generated for it.
// LASTVAL() is session-scoped, so the INSERT and the key read must happen
// on the same pooled connection.
func (d *Driver) Insert(ctx context.Context, sql string) (int64, error) {
	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		return 0, mapError(err, "failed to acquire connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, sql); err != nil {
		return 0, mapError(err, "insert failed")
	}

	var id int64
	if err := conn.QueryRow(ctx, "SELECT LASTVAL()").Scan(&id); err != nil {
		return 0, mapError(err, "failed to read generated key")
	}
	return id, nil
}

// --- pgx type wrappers ---

// pgxRows wraps pgx.Rows to satisfy engine.Rows.
type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool             { return r.rows.Next() }
func (r *pgxRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r *pgxRows) Close()                 { r.rows.Close() }
func (r *pgxRows) Err() error             { return r.rows.Err() }

func (r *pgxRows) Columns() ([]string, error) {
	descs := r.rows.FieldDescriptions()
	cols := make([]string, len(descs))
	for i, d := range descs {
		cols[i] = d.Name
	}
	return cols, nil
}

// --- error mapping ---

// PostgreSQL SQLSTATE classes.
// Full list: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classConnection = "08" // connection exceptions
	classIntegrity  = "23" // integrity constraint violations
)

// mapError translates pgx / pgconn native errors into *errs.Error.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Wrap(errs.ErrKindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, classIntegrity):
			return errs.Wrap(errs.ErrKindConflict,
				fmt.Sprintf("constraint violation: %s", pgErr.Message), err)
		case strings.HasPrefix(pgErr.Code, classConnection):
			return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
		default:
			return errs.Wrap(errs.ErrKindQueryFailed,
				fmt.Sprintf("%s: %s", msg, pgErr.Message), err)
		}
	}

	// Fallthrough: connection-level errors (TLS, network, auth).
	return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
}
