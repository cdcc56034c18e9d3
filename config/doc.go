// Package config provides type-safe environment variable loading with
// per-type caching. It parses env struct tags via the caarlos0/env library
// and automatically loads a .env file on first use.
//
//	var cfg redisconn.Config
//	config.MustLoad(&cfg)
package config
