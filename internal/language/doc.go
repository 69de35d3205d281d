// Package language turns language codes found in XLIFF headers and produced
// by language detection into human-readable labels.
package language
