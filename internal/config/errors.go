package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are absent or invalid.
var (
	// ErrConfigurationMissing indicates that a value the server cannot start
	// without (storage DSN or shared password) was not provided by any source.
	ErrConfigurationMissing = errors.New("required configuration is missing")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a non-positive body limit or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates that ledgerctl settings could not be
	// parsed from the environment.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
