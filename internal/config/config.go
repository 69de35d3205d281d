package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output directory configuration. Relative directories are
// resolved against OutputRoot.
type Paths struct {
	OutputRoot     string `toml:"output_root"`
	ExtractsDir    string `toml:"extracts_dir"`
	ComparisonsDir string `toml:"comparisons_dir"`
	CommaListsDir  string `toml:"comma_lists_dir"`
	IdenticalDir   string `toml:"identical_dir"`
	SortedDir      string `toml:"sorted_dir"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File, when set, receives a copy of every diagnostic line.
	File string `toml:"file"`
}

// GroupBinding maps a single key to a categorization group name.
type GroupBinding struct {
	Key  string `toml:"key"`
	Name string `toml:"name"`
}

// Sort contains configuration for the interactive categorizer.
type Sort struct {
	Groups []GroupBinding `toml:"groups"`
}

// Config encapsulates all configuration values for xlftools.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Logging Logging `toml:"logging"`
	Sort    Sort    `toml:"sort"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	if err := loadDotEnv(); err != nil {
		return nil, "", false, err
	}

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// normalizeSort restores the default bindings when the file has none
		cfg.Sort.Groups = nil
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// loadDotEnv reads ./.env when present. Variables already set in the
// environment win.
func loadDotEnv() error {
	if _, err := os.Stat(dotEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", dotEnvFile, err)
	}
	if err := godotenv.Load(dotEnvFile); err != nil {
		return fmt.Errorf("load %s: %w", dotEnvFile, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigFile)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// OutputDir returns the directory for a report kind and creates it.
func (c *Config) OutputDir(kind OutputKind) (string, error) {
	var dir string
	switch kind {
	case OutputExtracts:
		dir = c.Paths.ExtractsDir
	case OutputComparisons:
		dir = c.Paths.ComparisonsDir
	case OutputCommaLists:
		dir = c.Paths.CommaListsDir
	case OutputIdentical:
		dir = c.Paths.IdenticalDir
	case OutputSorted:
		dir = c.Paths.SortedDir
	default:
		return "", fmt.Errorf("unknown output kind %q", kind)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %q: %w", dir, err)
	}
	return dir, nil
}

// OutputKind names one of the per-command report folders.
type OutputKind string

const (
	OutputExtracts    OutputKind = "extracts"
	OutputComparisons OutputKind = "comparisons"
	OutputCommaLists  OutputKind = "comma_lists"
	OutputIdentical   OutputKind = "identical"
	OutputSorted      OutputKind = "sorted"
)

// GroupKeys returns the configured categorization groups as a key → name map
// along with the keys in configuration order.
func (c *Config) GroupKeys() (map[string]string, []string) {
	groups := make(map[string]string, len(c.Sort.Groups))
	order := make([]string, 0, len(c.Sort.Groups))
	for _, g := range c.Sort.Groups {
		if _, exists := groups[g.Key]; exists {
			continue
		}
		groups[g.Key] = g.Name
		order = append(order, g.Key)
	}
	return groups, order
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
