// Package main hosts the xlftools CLI entrypoint and command graph.
//
// Each subcommand parses one or two Crowdin XLF/XLIFF files, hands them to an
// internal package, and writes a report under the configured output
// directories. Configuration resolution, logger construction, and report
// path defaults are centralized here so the internal packages stay free of
// CLI concerns.
package main
