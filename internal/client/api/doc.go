// Package api is the single egress/ingress point for all calls to the ECG
// analysis service.
//
// # Overview
//
// The package provides:
//  1. Gateway — one configured resty client enforcing the base address,
//     the default request timeout, and JSON content negotiation. A request
//     middleware attaches the bearer credential (read from a TokenSource at
//     send time, never captured at construction) and stamps an X-Request-Id.
//     A response middleware watches for HTTP 401: it erases the durable
//     credential, signals the session to invalidate itself, and only then
//     lets the rejected result propagate to the original caller. Login and
//     registration are exempt — a 401 there means "bad credentials
//     supplied", not "session expired".
//  2. Thin typed wrappers over the service endpoints: AuthAPI, RecordsAPI,
//     ProcessingAPI and ExportAPI. Each method issues exactly one request
//     and returns the parsed payload or the mapped error. Upload
//     (multipart) and Download (binary body) are the only two request
//     shapes that deviate from plain JSON.
//
// # Error Handling
//
// Failures map onto the sentinel errors in internal/common and can be
// matched with errors.Is: transport failures and timeouts become
// common.ErrUnavailable, 401/403 become common.ErrUnauthorized, 404 becomes
// common.ErrNotFound, and any other non-2xx response becomes an *APIError
// carrying the status code and the server-provided detail message
// (unwrapping to common.ErrServer).
//
// Concurrency & Contexts
//
// The Gateway is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; there is no built-in request
// de-duplication, and the per-call timeout is the only abort mechanism.
package api
