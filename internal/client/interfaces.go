// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable command line front end for the ledger server.
type Client interface {
	Run() error
}
