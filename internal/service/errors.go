package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongPassword is returned when credentials do not match the stored hash.
	ErrWrongPassword = errors.New("wrong login or password")
	// ErrTokenIsExpiredOrInvalid is returned for any token that fails validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	// ErrUnsupportedFileType is returned for uploads with an extension the
	// document pipeline cannot extract text from.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrEmptyDocument is returned when an uploaded file yields no extractable text.
	ErrEmptyDocument = errors.New("document contains no extractable text")
	// ErrUpstreamUnavailable is returned when the chat completion upstream
	// cannot serve the request.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrSessionNotFound is returned for assessment calls with an unknown session id.
	ErrSessionNotFound = errors.New("assessment session not found")
)
