package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the client's credentials or token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrLoginTaken is returned when registration fails because the login already exists.
	ErrLoginTaken = errors.New("login already taken")
	// ErrUpstreamNotConfigured is returned when an outbound client is missing its API key.
	ErrUpstreamNotConfigured = errors.New("upstream not configured")
	// ErrUpstreamStatus is returned when an upstream API answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	// ErrUpstreamResponse is returned when an upstream payload cannot be decoded.
	ErrUpstreamResponse = errors.New("malformed upstream response")

	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
