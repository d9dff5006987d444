package easysql

import (
	"io"
	"time"
)

// Option customises the engine opened by New.
type Option func(*options)

type options struct {
	maxConns        int32
	minConns        int32
	maxConnLifetime time.Duration
	connectTimeout  time.Duration
	queryTimeout    time.Duration

	logLevel  string
	logFormat string
	logOutput io.Writer
}

func defaultOptions() *options {
	return &options{
		logLevel:  "info",
		logFormat: "json",
	}
}

// WithMaxConns caps the connection pool size.
func WithMaxConns(n int32) Option {
	return func(o *options) { o.maxConns = n }
}

// WithMinConns sets the number of idle connections kept alive.
func WithMinConns(n int32) Option {
	return func(o *options) { o.minConns = n }
}

// WithConnLifetime bounds how long a pooled connection may be reused.
func WithConnLifetime(d time.Duration) Option {
	return func(o *options) { o.maxConnLifetime = d }
}

// WithConnectTimeout bounds how long New may spend establishing the
// initial connection.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) { o.connectTimeout = d }
}

// WithQueryTimeout applies a per-statement deadline to every Execute call
// that does not already carry one.
func WithQueryTimeout(d time.Duration) Option {
	return func(o *options) { o.queryTimeout = d }
}

// WithLogging sets the log level ("debug", "info", "warn", "error") and
// format ("json", "console"). Executed statements are logged at debug level.
func WithLogging(level, format string) Option {
	return func(o *options) {
		o.logLevel = level
		o.logFormat = format
	}
}

// WithLogOutput redirects log output, mainly useful in tests.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}
