// Package common defines shared constants and sentinel errors used across
// the ECG client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnauthorized means the service rejected the credential
	// (invalid login, or an expired/invalid token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable covers transport failures and timeouts.
	ErrUnavailable = errors.New("service unavailable")

	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is reported for client-side precondition failures
	// detected before any network call is made.
	ErrValidation = errors.New("validation failed")

	// ErrServer covers non-2xx responses that are not authorization-related.
	ErrServer = errors.New("server error")
)
