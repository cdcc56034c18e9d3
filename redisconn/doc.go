// Package redisconn provides Redis client initialization and health checking.
//
// Connect validates the connection URL, builds a client, and verifies
// connectivity with a ping before returning, retrying transient failures
// with a configurable interval and overall timeout. Both redis:// and
// rediss:// (TLS) URL schemes are supported.
//
//	cfg := redisconn.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := redisconn.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Healthcheck wraps a ping into a func(context.Context) error for use in
// HTTP health endpoints or Kubernetes probes.
package redisconn
