// Package config loads catalog.yaml with environment variable overrides.
package config
