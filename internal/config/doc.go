// Package config loads, normalizes, and validates tailctl configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TAILCTL_SOCKET. The Config type centralizes every knob the CLI needs:
// daemon transport overrides, output formatting, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
