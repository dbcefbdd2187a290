// Package credentials persists the bearer credential across process
// restarts. At most one credential is stored at a time; an absent row
// means the session is unauthenticated.
package credentials

import "context"

// Repository is the durable credential store.
type Repository interface {
	// Get returns the stored credential, or "" when none is stored.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored credential.
	Set(ctx context.Context, token string) error

	// Clear erases the stored credential. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
