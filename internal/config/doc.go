// Package config loads and validates application settings from defaults,
// an optional config.yaml and TODO_-prefixed environment variables.
package config
