package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"

	"xlftools/internal/config"
	"xlftools/internal/testsupport"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XLFTOOLS_OUTPUT_ROOT", "")
	t.Setenv("XLFTOOLS_LOG_LEVEL", "")
	t.Setenv("XLFTOOLS_LOG_FORMAT", "")
	return home
}

func TestLoadDefaultConfigResolvesOutputDirs(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	t.Setenv("XLFTOOLS_OUTPUT_ROOT", root)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Paths.OutputRoot != root {
		t.Fatalf("unexpected output root: got %q want %q", cfg.Paths.OutputRoot, root)
	}
	wantExtracts := filepath.Join(root, "xlf_extracts")
	if cfg.Paths.ExtractsDir != wantExtracts {
		t.Fatalf("unexpected extracts dir: got %q want %q", cfg.Paths.ExtractsDir, wantExtracts)
	}
	if cfg.Paths.ComparisonsDir != filepath.Join(root, "xlf-comparisons") {
		t.Fatalf("unexpected comparisons dir: %q", cfg.Paths.ComparisonsDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if len(cfg.Sort.Groups) != len(config.DefaultGroups()) {
		t.Fatalf("expected default sort groups, got %d", len(cfg.Sort.Groups))
	}

	dir, err := cfg.OutputDir(config.OutputSorted)
	if err != nil {
		t.Fatalf("OutputDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected %q to be created: %v", dir, err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "xlftools.toml")

	content := `
[paths]
output_root = "` + filepath.ToSlash(tempDir) + `"
extracts_dir = "out/extracts"

[logging]
format = "JSON"
level = "Debug"

[[sort.groups]]
key = "a"
name = "accepted"

[[sort.groups]]
key = "b"
name = "broken"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.ExtractsDir != filepath.Join(tempDir, "out", "extracts") {
		t.Fatalf("unexpected extracts dir: %q", cfg.Paths.ExtractsDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}

	groups, order := cfg.GroupKeys()
	if diff := cmp.Diff([]string{"a", "b"}, order); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}
	if groups["b"] != "broken" {
		t.Fatalf("unexpected group mapping: %v", groups)
	}
}

func TestEnvOverridesLogging(t *testing.T) {
	isolateEnv(t)
	t.Setenv("XLFTOOLS_LOG_LEVEL", "error")
	t.Setenv("XLFTOOLS_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env overrides, got %+v", cfg.Logging)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[[sort.groups]]") {
		t.Fatalf("sample config missing sort groups: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if diff := cmp.Diff(config.DefaultGroups(), cfg.Sort.Groups); diff != "" {
		t.Fatalf("sample groups differ from defaults (-want +got):\n%s", diff)
	}
	if cfg.Paths.CommaListsDir != "different-name-lists" {
		t.Fatalf("unexpected sample comma lists dir: %q", cfg.Paths.CommaListsDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log level")
	}

	cfg = config.Default()
	cfg.Sort.Groups = append(cfg.Sort.Groups, config.GroupBinding{Key: "1", Name: "dup"})
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate group key")
	}

	cfg = config.Default()
	cfg.Sort.Groups = []config.GroupBinding{{Key: "`", Name: "new"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for reserved key")
	}

	cfg = config.Default()
	cfg.Sort.Groups = []config.GroupBinding{{Key: "ab", Name: "long"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for multi-character key")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestOutputDirCreatesDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithGroups(config.GroupBinding{Key: "a", Name: "accent"}))

	dir, err := cfg.OutputDir(config.OutputSorted)
	if err != nil {
		t.Fatalf("OutputDir: %v", err)
	}
	if dir != cfg.Paths.SortedDir {
		t.Fatalf("OutputDir = %q, want %q", dir, cfg.Paths.SortedDir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}
	if _, err := cfg.OutputDir(config.OutputKind("bogus")); err == nil {
		t.Fatal("expected error for unknown output kind")
	}

	groups, order := cfg.GroupKeys()
	if diff := cmp.Diff([]string{"a"}, order); diff != "" {
		t.Fatalf("group order (-want +got):\n%s", diff)
	}
	if groups["a"] != "accent" {
		t.Fatalf("unexpected groups: %v", groups)
	}
}
