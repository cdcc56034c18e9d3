// Package session defines the session entity and the store contract shared
// by all session persistence backends.
//
// A Session carries a stable opaque identifier, a mapping of named values,
// and an optional expiration. The identifier is derived from a secret random
// token: the raw token is what the client receives as the cookie value, while
// stores only ever see its hash. Decoding a cookie back into an identifier is
// done with IDFromCookieValue.
//
// # Creating and using sessions
//
//	sess, err := session.New()
//	if err != nil {
//		return err
//	}
//	sess.Set("user_id", "u_123")
//	sess.ExpireIn(24 * time.Hour)
//
//	cookieValue, err := store.Save(ctx, sess)
//	if err != nil {
//		return err
//	}
//	// cookieValue is non-empty here because the session is new; hand it to
//	// the client. On a later request:
//
//	sess, err = store.Load(ctx, cookieValue)
//	if err != nil {
//		return err
//	}
//	if sess == nil {
//		// expired or never created; treat as anonymous
//	}
//
// # Store contract
//
// Store implementations report a missing session as (nil, nil) from Load,
// never as an error. A stored value that exists but cannot be deserialized
// is a hard ErrCorruptData error. Destroy is idempotent. Clear and Count
// operate on the whole namespace the store was configured with.
//
// The package includes MemoryStore, an in-memory implementation of the
// contract for tests and local development. The production Redis-backed
// implementation lives in the redisstore package.
package session
