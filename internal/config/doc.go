// Package config loads, normalizes, and validates matchpoint configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the standard locations. The Config
// type centralizes every knob the CLI needs: the fuzzy matching threshold,
// log format and level, and default report options.
//
// Always obtain settings through this package so downstream code receives
// sanitized values, canonical log formats, and clear validation errors.
package config
