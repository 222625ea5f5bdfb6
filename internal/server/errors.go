// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no HTTP listen address is configured")
)
