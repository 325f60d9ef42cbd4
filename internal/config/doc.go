// Package config provides configuration loading, merging, and validation
// facilities for the ledger server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a local .env file is loaded first when present)
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig]. The server refuses to start
// when the storage DSN or the shared password is missing.
package config
