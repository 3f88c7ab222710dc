package services

import "errors"

// The service layer reports exactly three typed failures to its callers.
// Nothing is retried here; retry policy belongs to the transport.
var (
	// ErrAlreadyExists reports a violated uniqueness rule (economy name or
	// one-account-per-user-per-economy).
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrNotFound reports a referenced economy, account or user that does
	// not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrMalformedInput reports input rejected by local validation before
	// any store access.
	ErrMalformedInput = errors.New("malformed input")
)
