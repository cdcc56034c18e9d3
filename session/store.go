package session

import "context"

// Store defines the persistence contract consumed by session middleware.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load retrieves the session identified by the given cookie value.
	// A missing session is a normal outcome and is reported as (nil, nil),
	// never as an error; a stored value that fails to deserialize is a hard
	// error (ErrCorruptData).
	Load(ctx context.Context, cookieValue string) (*Session, error)

	// Save persists the full session state, overwriting any previous state
	// for the same ID. It returns the session's current cookie value, which
	// is empty when no new cookie needs to be issued to the client.
	Save(ctx context.Context, sess *Session) (string, error)

	// Destroy removes the session's backend record. Destroying a session
	// that no longer exists is a success, not an error.
	Destroy(ctx context.Context, sess *Session) error

	// Clear removes every session in the store's namespace.
	Clear(ctx context.Context) error

	// Count returns the number of sessions in the store's namespace.
	Count(ctx context.Context) (int64, error)
}
