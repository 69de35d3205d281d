// Package config loads, normalizes, and validates xlftools configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// XLFTOOLS_OUTPUT_ROOT. A .env file in the working directory is read before
// the environment is consulted so per-project overrides do not need shell
// setup.
//
// Always obtain output locations through this package so every command writes
// its reports under the same folder layout.
package config
