// Package engine defines the contract between the EasySQL facade and the
// dialect drivers (sqlite, postgres, mysql). The facade talks only to this
// package and never imports a driver package directly.
package engine

import "context"

// Dialect identifies the SQL dialect of an engine.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
	DialectMySQL
)

func (d Dialect) String() string {
	switch d {
	case DialectSQLite:
		return "sqlite"
	case DialectPostgres:
		return "postgres"
	case DialectMySQL:
		return "mysql"
	default:
		return "unknown"
	}
}

// Engine is the central contract every dialect driver implements.
// Statements arrive fully inlined; drivers never see bind parameters.
type Engine interface {
	// Dialect reports which SQL dialect this engine speaks.
	Dialect() Dialect

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error

	// Close releases all resources held by the connection pool.
	Close()

	// Query executes a statement that returns rows.
	Query(ctx context.Context, sql string) (Rows, error)

	// Exec executes a statement that returns no rows and reports the
	// number of rows affected.
	Exec(ctx context.Context, sql string) (int64, error)

	// Insert executes an INSERT statement and returns the generated
	// primary key. Key retrieval is dialect-specific: sqlite and mysql
	// use the driver's last-insert id, postgres reads LASTVAL() on the
	// same connection.
	Insert(ctx context.Context, sql string) (int64, error)
}

// Rows is an abstraction over a database result set.
// Callers must always call Close() when done, even on error.
type Rows interface {
	// Next advances to the next row.
	// Returns false when no more rows exist or on error.
	Next() bool

	// Scan copies the current row's columns into the provided destinations.
	Scan(dest ...any) error

	// Columns returns the column names of the result set.
	Columns() ([]string, error)

	// Close releases resources held by the result set.
	Close()

	// Err returns any error encountered during iteration.
	Err() error
}
