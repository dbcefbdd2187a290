package common

const (
	// RequestIDHeader carries a per-request identifier on outbound calls.
	RequestIDHeader = "X-Request-Id"

	// CredentialKey is the durable storage key holding the bearer token.
	CredentialKey = "token"
)

// Event topics published on the in-process bus.
const (
	// EventSessionReady fires exactly once, after the startup
	// restore-and-verify sequence has settled.
	EventSessionReady = "session:ready"

	// EventSessionInvalidated fires when the service rejects the session
	// credential and the session has been torn down. Hosts subscribe to it
	// to navigate the user back to the login entry point.
	EventSessionInvalidated = "session:invalidated"
)
