// Package config loads, normalizes, and validates pomelo's TOML
// configuration. Load resolves the file from an explicit flag, the per-user
// config directory, or a project-local pomelo.toml, applies defaults for
// anything unset, and expands every path before the rest of the program sees
// it.
package config
