package testsupport

import (
	"path/filepath"
	"testing"

	"razzie/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp database
// directory per test. It defaults common fields and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Server.Bind = "127.0.0.1:0"
	cfg.Database.Dir = filepath.Join(base, "db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithCSVPath sets the ingest CSV path on the test config.
func WithCSVPath(path string) ConfigOption {
	return func(c *config.Config) {
		c.Ingest.CSVPath = path
	}
}
