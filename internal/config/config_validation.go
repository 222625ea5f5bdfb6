// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package config

// supportedAlgorithms lists the JWT signing algorithms the server accepts
// via the ALGORITHM variable. Only the HMAC family is supported; asymmetric
// schemes would require key-pair management the deployment contract does
// not define.
var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	if _, ok := supportedAlgorithms[cfg.App.Algorithm]; !ok {
		return ErrUnsupportedAlgorithm
	}

	if cfg.App.TokenExpireMinutes <= 0 {
		return ErrInvalidTokenExpiry
	}

	if cfg.Storage.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}

	if cfg.Storage.VectorDimension <= 0 {
		return ErrInvalidVectorDimension
	}

	return nil
}
