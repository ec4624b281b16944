// Package config loads the server configuration from environment variables
// and command-line flags, merges the sources, and applies defaults.
//
// Priority: environment variables win over flags; anything still unset
// after the merge falls back to the defaults declared in config.go.
package config
