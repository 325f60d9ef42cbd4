// Package http implements the HTTP transport layer of the ledger server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as shared-password checks, request tracing, access logging,
// metrics, CORS, response compression and body limits are handled in this
// package before requests are delegated to the service layer.
package http
