// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the server adapter, and the local chat
// history into a single process lifecycle.
package client
