// Package config loads the YAML configuration used by the easysql shell.
package config

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/koustreak/EasySQL/internal/errs"
)

// Duration is a time.Duration that unmarshals from YAML strings like "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds everything the shell needs to open an engine.
type Config struct {
	// URL is the connection URL (sqlite:///…, postgres://…, mysql://…).
	URL string `yaml:"url"`

	Pool    PoolConfig `yaml:"pool"`
	Logging LogConfig  `yaml:"logging"`

	// QueryTimeout bounds each statement. Zero means no deadline.
	QueryTimeout Duration `yaml:"query_timeout"`
}

// PoolConfig tunes the engine's connection pool.
type PoolConfig struct {
	MaxConns       int32    `yaml:"max_conns"`
	MinConns       int32    `yaml:"min_conns"`
	ConnLifetime   Duration `yaml:"conn_lifetime"`
	ConnectTimeout Duration `yaml:"connect_timeout"`
}

// LogConfig tunes shell logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pool: PoolConfig{
			MaxConns:       10,
			MinConns:       2,
			ConnLifetime:   Duration(30 * time.Minute),
			ConnectTimeout: Duration(10 * time.Second),
		},
		Logging: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput,
			fmt.Sprintf("cannot parse config file %s", path), err)
	}

	return cfg, nil
}
