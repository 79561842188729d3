package auth

import "errors"

// Service-level errors returned by the credential services.
var (
	// ErrClientIDRequired is returned by IssueKey when the client
	// identifier is empty.
	ErrClientIDRequired = errors.New("client ID is required")
)
