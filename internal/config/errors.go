package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingSecretKey indicates SECRET_KEY was not provided. The
	// server refuses to start rather than sign tokens with an empty key.
	ErrMissingSecretKey = errors.New("SECRET_KEY is required")
	// ErrUnsupportedAlgorithm indicates ALGORITHM names a signing
	// algorithm outside the supported HMAC family.
	ErrUnsupportedAlgorithm = errors.New("ALGORITHM must be one of HS256, HS384, HS512")
	// ErrInvalidTokenExpiry indicates ACCESS_TOKEN_EXPIRE_MINUTES is zero
	// or negative.
	ErrInvalidTokenExpiry = errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	// ErrMissingDatabaseURL indicates DATABASE_URL was not provided.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	// ErrInvalidVectorDimension indicates VECTOR_DIMENSION is zero or
	// negative.
	ErrInvalidVectorDimension = errors.New("VECTOR_DIMENSION must be positive")

	// ErrInvalidClientServer indicates the terminal client was started
	// without a server address.
	ErrInvalidClientServer = errors.New("server address is required")
)
