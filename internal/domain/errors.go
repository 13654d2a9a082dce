package domain

import "errors"

// Sentinel errors for client operations
var (
	// ErrAuthFailed indicates the server rejected the credentials or token
	ErrAuthFailed = errors.New("authentication failed")

	// ErrServerUnreachable indicates the exercise server could not be reached
	ErrServerUnreachable = errors.New("exercise server is unreachable")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrNoSession indicates an operation that needs a stored session found none
	ErrNoSession = errors.New("no stored session")

	// ErrUploadCancelled indicates the user cancelled an in-flight upload
	ErrUploadCancelled = errors.New("upload cancelled")
)
