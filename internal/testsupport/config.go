package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"bitext/internal/config"
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
	cfgVal.TM.Enabled = false
	cfgVal.TM.Path = filepath.Join(base, "tm", "tm.db")
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTM enables translation-memory persistence on the test config.
func WithTM() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TM.Enabled = true
	}
}

// WithDelimiters overrides the hard and soft delimiters on the test config.
func WithDelimiters(hard, soft string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Segmentation.HardDelimiter = hard
		b.cfg.Segmentation.SoftDelimiter = soft
	}
}

// WriteConfig renders cfg as TOML in a temp directory and returns the path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
