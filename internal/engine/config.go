package engine

import "time"

// Config holds all settings needed to connect to and pool a database.
type Config struct {
	// DSN is the driver-level data source name produced by ParseURL.
	DSN string

	// Pool tuning
	MaxConns        int32         // maximum number of connections in the pool
	MinConns        int32         // minimum number of idle connections kept alive
	MaxConnLifetime time.Duration // maximum time a connection may be reused
	MaxConnIdleTime time.Duration // maximum time a connection may sit idle

	// ConnectTimeout bounds how long establishing a new connection may take.
	ConnectTimeout time.Duration
}

// DefaultConfig returns pool settings suited to a small interactive workload.
func DefaultConfig(dsn string) *Config {
	return &Config{
		DSN:             dsn,
		MaxConns:        10,
		MinConns:        2,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		ConnectTimeout:  10 * time.Second,
	}
}
