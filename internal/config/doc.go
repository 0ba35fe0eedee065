// Package config loads, normalizes, and validates sheaf's TOML
// configuration. Paths are tilde-expanded and made absolute during load so
// downstream packages never deal with relative or home-anchored values.
package config
