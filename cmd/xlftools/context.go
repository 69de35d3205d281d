package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"xlftools/internal/config"
	"xlftools/internal/fileutil"
	"xlftools/internal/logging"
	"xlftools/internal/textutil"
	"xlftools/internal/xliff"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger *slog.Logger
	runID  string
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if format := flagValue(c.logFormatFlag); format != "" {
			cfg.Logging.Format = strings.ToLower(format)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the run logger once. Diagnostics always go to w so
// stdout carries only command output.
func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	c.runID = uuid.NewString()
	c.logger = logging.WithRunID(logger, c.runID)
	return c.logger, nil
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// outputPath returns explicit when set, otherwise "<dir for kind>/<name>".
func (c *commandContext) outputPath(kind config.OutputKind, explicit, name string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	dir, err := cfg.OutputDir(kind)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func (c *commandContext) parseInput(cmd *cobra.Command, path string) (*xliff.Document, error) {
	doc, err := xliff.ParseFile(path)
	if err != nil {
		if errors.Is(err, xliff.ErrNotFound) {
			return nil, inputNotFound(path)
		}
		return nil, err
	}
	if logger := c.loggerValue(); logger.Enabled(commandCtx(cmd), slog.LevelDebug) {
		logger.Debug("parsed input",
			logging.String(logging.FieldInput, path),
			logging.Int("trans_units", len(doc.Units())),
		)
	}
	return doc, nil
}

func (c *commandContext) writeReport(cmd *cobra.Command, path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(commandCtx(cmd), path, data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	c.loggerValue().Info("report written",
		logging.String(logging.FieldOutput, path),
		logging.Int("bytes", len(data)),
	)
	return nil
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func inputNotFound(path string) error {
	return fmt.Errorf("input file %q not found", path)
}

func reportName(input, suffix string) string {
	return textutil.ReportName(input, suffix)
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
