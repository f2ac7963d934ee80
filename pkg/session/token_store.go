package session

import "context"

// TokenStore defines the interface for durable credential persistence.
// A single fixed entry maps to the current credential; absence of the entry
// means unauthenticated at startup.
type TokenStore interface {
	// Load retrieves the persisted credential. An absent entry is not an
	// error: Load returns an empty string and a nil error.
	Load(ctx context.Context) (string, error)

	// Save persists the credential, replacing any previous entry.
	Save(ctx context.Context, token string) error

	// Clear removes the entry. Clearing an absent entry is a no-op.
	Clear(ctx context.Context) error
}
