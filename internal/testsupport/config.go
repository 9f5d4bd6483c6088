package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"pomelo/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.InputDirs = []string{filepath.Join(base, "input")}
	cfgVal.Paths.OutputDir = filepath.Join(base, "library")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	for _, dir := range append([]string{cfgVal.Paths.OutputDir, cfgVal.Paths.LogDir}, cfgVal.Paths.InputDirs...) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return builder.cfg
}

// WithSortPolicy sets the sort policy on the test config.
func WithSortPolicy(policy string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Import.SortPolicy = policy
	}
}

// WithExtensions overrides the captured extensions on the test config.
func WithExtensions(extensions ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Import.Extensions = extensions
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
