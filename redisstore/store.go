package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/redisession/session"
)

// RedisStore persists sessions in Redis, one key per session, with the
// session's expiration mirrored as a native key TTL.
//
// The store itself holds no mutable state beyond the shared pooled client
// and an immutable key prefix, so a single instance is safe for use by any
// number of concurrent callers.
type RedisStore struct {
	client    redis.UniversalClient
	prefix    string
	scanCount int64
}

var _ session.Store = (*RedisStore)(nil)

// New creates a Redis-backed session store on top of an already connected
// client. The client's connection pooling, timeouts, and retry behavior are
// used as configured by the caller; the store adds none of its own.
func New(client redis.UniversalClient, opts ...Option) *RedisStore {
	s := &RedisStore{
		client:    client,
		scanCount: defaultScanCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load retrieves the session identified by the given cookie value.
// A missing key is reported as (nil, nil). A present value that fails to
// deserialize is a session.ErrCorruptData error, never treated as absent.
func (s *RedisStore) Load(ctx context.Context, cookieValue string) (*session.Session, error) {
	id, err := session.IDFromCookieValue(cookieValue)
	if err != nil {
		return nil, err
	}

	val, err := s.client.Get(ctx, s.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, errors.Join(session.ErrCorruptData, err)
	}
	return &sess, nil
}

// Save serializes the full session state and writes it unconditionally
// (last writer wins). When the session declares an expiration, the key's
// TTL is set from the same instant, so the embedded expiration and the
// backend TTL always agree. A session whose expiration has already elapsed
// is deleted instead of being written back without a TTL.
func (s *RedisStore) Save(ctx context.Context, sess *session.Session) (string, error) {
	ttl := time.Duration(0)
	if d, ok := sess.ExpiresIn(); ok {
		if d <= 0 {
			if err := s.client.Del(ctx, s.key(sess.ID)).Err(); err != nil {
				return "", err
			}
			return "", nil
		}
		ttl = d
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", errors.Join(session.ErrSerialization, err)
	}

	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return "", err
	}
	return sess.CookieValue(), nil
}

// Destroy deletes the session's key. Deleting an already absent key is a
// success; DEL reports the number of removed keys, not an error.
func (s *RedisStore) Destroy(ctx context.Context, sess *session.Session) error {
	return s.client.Del(ctx, s.key(sess.ID)).Err()
}

// Clear removes every session in the store's namespace.
//
// Without a key prefix this issues FLUSHALL and destroys every key in the
// backend, including keys that do not belong to this store. Configure
// WithKeyPrefix when the Redis instance is shared with anything else.
func (s *RedisStore) Clear(ctx context.Context) error {
	if s.prefix == "" {
		return s.client.FlushAll(ctx).Err()
	}

	keys, err := s.sessionKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Count returns the number of sessions in the store's namespace.
//
// Without a key prefix this is DBSIZE and counts every key in the backend,
// not just session keys. With a prefix the count is derived from a SCAN of
// matching keys and inherits its non-atomic snapshot semantics.
func (s *RedisStore) Count(ctx context.Context) (int64, error) {
	if s.prefix == "" {
		return s.client.DBSize(ctx).Result()
	}

	keys, err := s.sessionKeys(ctx)
	if err != nil {
		return 0, err
	}
	return int64(len(keys)), nil
}

// Ping checks backend connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client and its connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// sessionKeys drives the cursor-based SCAN to completion and returns every
// string key matching the namespace pattern, or nil when nothing matched.
//
// The result is a non-atomic snapshot: keys written after the scan started
// may or may not appear, and keys deleted mid-scan may still be included.
// On any page failure the partial result is discarded and the error returned.
func (s *RedisStore) sessionKeys(ctx context.Context) ([]string, error) {
	iter := s.client.ScanType(ctx, 0, s.keyPattern(), s.scanCount, "string").Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// key maps a session ID to its physical Redis key. Session IDs are
// base64url tokens and contain no glob metacharacters, so the derived
// scan pattern matches exactly the keys this store writes.
func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) keyPattern() string {
	return s.prefix + "*"
}
