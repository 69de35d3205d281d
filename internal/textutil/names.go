package textutil

import (
	"path/filepath"
	"strings"
)

// BaseName returns the file name of path without directory or final extension.
func BaseName(path string) string {
	base := filepath.Base(strings.ReplaceAll(path, "\\", "/"))
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// ReportName builds "<base of input><suffix>", e.g. ReportName("a/b.xlf", "_names.txt").
func ReportName(input, suffix string) string {
	return BaseName(input) + suffix
}
