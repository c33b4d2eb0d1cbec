package cache

import "errors"

// Sentinel errors shared by the catalog client and its callers.
var (
	// ErrNotFound is returned when the upstream reports a missing resource (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrNetwork is returned for transport failures (timeouts, refused connections, DNS).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a response body is not valid JSON for the target type.
	ErrDecode = errors.New("malformed response body")
)
