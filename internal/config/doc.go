// Package config loads, normalizes, and validates razzie configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such
// as RAZZIE_BIND, including values sourced from a .env file. The Config
// type centralizes every knob the server and CLI need.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths, canonical log formats, and clear validation
// errors.
package config
