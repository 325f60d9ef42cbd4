// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements ledgerctl, the command-line client of the ledger
// server.
//
// It wires the cobra command tree, the HTTP adapter and the client
// configuration into a single process lifecycle. Data goes to stdout, logs to
// stderr.
package client
