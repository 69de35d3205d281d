package testsupport

import (
	"path/filepath"
	"testing"

	"xlftools/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose output directories live under a unique
// temp directory per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputRoot = base
	cfg.Paths.ExtractsDir = filepath.Join(base, "xlf_extracts")
	cfg.Paths.ComparisonsDir = filepath.Join(base, "xlf-comparisons")
	cfg.Paths.CommaListsDir = filepath.Join(base, "different-name-lists")
	cfg.Paths.IdenticalDir = filepath.Join(base, "identical-translations")
	cfg.Paths.SortedDir = filepath.Join(base, "sorted-comparisons")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithGroups replaces the categorizer key bindings.
func WithGroups(groups ...config.GroupBinding) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Sort.Groups = groups
	}
}
