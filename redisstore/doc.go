// Package redisstore implements the session.Store contract on top of Redis.
//
// Each session is stored as a single key/value pair: the value is the full
// JSON-serialized session state, and the key is the session ID, optionally
// namespaced with a configured prefix. A session's expiration is mirrored as
// a native Redis TTL set from the same instant on every save, so the backend
// expires sessions on its own without any sweeper process.
//
// # Usage
//
//	client, err := redisconn.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	store := redisstore.New(client, redisstore.WithKeyPrefix("sessions/"))
//
//	cookieValue, err := store.Save(ctx, sess)
//	sess, err = store.Load(ctx, cookieValue)
//	err = store.Destroy(ctx, sess)
//	n, err := store.Count(ctx)
//	err = store.Clear(ctx)
//
// # Namespacing and whole-store operations
//
// With a key prefix configured, Count and Clear enumerate matching keys via
// cursor-based SCAN and operate on exactly that set. The enumeration is a
// non-atomic snapshot: concurrent writes may or may not be observed, and a
// Clear racing a Save can leave the new session in place or delete it
// depending on interleaving. This is accepted; callers needing a consistent
// view must provide their own coordination.
//
// Without a prefix, Count is DBSIZE and Clear is FLUSHALL — both operate on
// the entire Redis keyspace. On a Redis instance shared with other
// subsystems an unprefixed Clear silently destroys unrelated data; always
// configure WithKeyPrefix in that setup.
//
// # Failure semantics
//
// Backend communication failures are returned to the caller untouched. The
// store performs no retries and no backoff of its own; retry policy belongs
// to the configured client or to the caller.
package redisstore
