package redisconn_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/redisession/redisconn"
)

func TestConnect_Success(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	client, err := redisconn.Connect(context.Background(), redisconn.Config{
		ConnectionURL:  "redis://" + mr.Addr(),
		RetryAttempts:  1,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	})

	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := redisconn.Connect(context.Background(), redisconn.Config{})

	assert.ErrorIs(t, err, redisconn.ErrEmptyConnectionURL)
}

func TestConnect_InvalidScheme(t *testing.T) {
	t.Parallel()

	_, err := redisconn.Connect(context.Background(), redisconn.Config{
		ConnectionURL: "http://localhost:6379",
	})

	assert.ErrorIs(t, err, redisconn.ErrFailedToParseConnString)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	_, err := redisconn.Connect(context.Background(), redisconn.Config{
		ConnectionURL:  "redis://127.0.0.1:1",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 2 * time.Second,
	})

	assert.ErrorIs(t, err, redisconn.ErrNotReady)
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	client, err := redisconn.Connect(context.Background(), redisconn.Config{
		ConnectionURL: "redis://" + mr.Addr(),
		RetryAttempts: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	check := redisconn.Healthcheck(client)
	assert.NoError(t, check(context.Background()))

	mr.Close()

	err = check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, redisconn.ErrHealthcheckFailed)
}
