package redisstore

// defaultScanCount is the per-page hint for SCAN-based enumeration.
const defaultScanCount = 1000

// Option configures a RedisStore at construction time.
type Option func(*RedisStore)

// WithKeyPrefix namespaces every session key with the given prefix and
// scopes Clear and Count to matching keys only. Two stores with different
// prefixes can safely share one Redis instance.
func WithKeyPrefix(prefix string) Option {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// WithScanCount sets the per-page size hint for SCAN-based enumeration.
// Non-positive values are ignored.
func WithScanCount(count int64) Option {
	return func(s *RedisStore) {
		if count > 0 {
			s.scanCount = count
		}
	}
}
