// Package server runs the ledger HTTP server.
//
// It owns the listener lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
