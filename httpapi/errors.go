package httpapi

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
	// ErrInvalidParam indicates a malformed or out-of-range query parameter.
	ErrInvalidParam = errors.New("invalid query parameter")
)
