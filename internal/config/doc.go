// Package config loads, normalizes, and validates mixtape configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. The Config type centralizes
// every knob the CLI needs: output and library directories, the ffprobe
// binary, and log format/level.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
