package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeSort()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("XLFTOOLS_OUTPUT_ROOT"); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputRoot = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.OutputRoot) == "" {
		c.Paths.OutputRoot = defaultOutputRoot
	}
	var err error
	if c.Paths.OutputRoot, err = expandPath(c.Paths.OutputRoot); err != nil {
		return fmt.Errorf("paths.output_root: %w", err)
	}

	dirs := []struct {
		key      string
		value    *string
		fallback string
	}{
		{"paths.extracts_dir", &c.Paths.ExtractsDir, defaultExtractsDir},
		{"paths.comparisons_dir", &c.Paths.ComparisonsDir, defaultComparisonsDir},
		{"paths.comma_lists_dir", &c.Paths.CommaListsDir, defaultCommaListsDir},
		{"paths.identical_dir", &c.Paths.IdenticalDir, defaultIdenticalDir},
		{"paths.sorted_dir", &c.Paths.SortedDir, defaultSortedDir},
	}
	for _, d := range dirs {
		value := strings.TrimSpace(*d.value)
		if value == "" {
			value = d.fallback
		}
		if !strings.HasPrefix(value, "~") && !filepath.IsAbs(value) {
			value = filepath.Join(c.Paths.OutputRoot, value)
		}
		expanded, err := expandPath(value)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.value = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("XLFTOOLS_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("XLFTOOLS_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	file, err := expandPath(strings.TrimSpace(c.Logging.File))
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = file
	return nil
}

func (c *Config) normalizeSort() {
	if len(c.Sort.Groups) == 0 {
		c.Sort.Groups = DefaultGroups()
		return
	}
	groups := make([]GroupBinding, 0, len(c.Sort.Groups))
	for _, g := range c.Sort.Groups {
		g.Key = strings.TrimSpace(g.Key)
		g.Name = strings.TrimSpace(g.Name)
		if g.Key == "" && g.Name == "" {
			continue
		}
		groups = append(groups, g)
	}
	c.Sort.Groups = groups
}
