package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidURL(t *testing.T) {
	err := Init(Options{URL: "://invalid-url"})
	assert.Error(t, err)
}

func TestInitConnectsAndAppliesPrefix(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable: %v", err)
	}
	defer srv.Close()
	t.Cleanup(func() { prefix = DefaultKeyPrefix })

	require.NoError(t, Init(Options{URL: "redis://" + srv.Addr(), KeyPrefix: "ledgertest"}))
	defer GetClient().Close()

	require.NoError(t, Set(context.Background(), "k", "v", time.Minute))
	stored, err := srv.Get("ledgertest:k")
	require.NoError(t, err)
	assert.Equal(t, "v", stored)
}

func TestSetClientAndBasicOps(t *testing.T) {
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable: %v", err)
	}
	defer srv.Close()

	cli := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	SetClient(cli)
	defer cli.Close()
	assert.NotNil(t, GetClient())

	ctx := context.Background()

	require.NoError(t, Set(ctx, "k", "v", time.Minute))
	val, err := Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	stored, err := srv.Get(DefaultKeyPrefix + ":k")
	require.NoError(t, err, "keys must live under the service prefix")
	assert.Equal(t, "v", stored)

	ok, err := SetNX(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "SetNX must not overwrite an existing key")

	require.NoError(t, Del(ctx, "k"))
	_, err = Get(ctx, "k")
	assert.Equal(t, goredis.Nil, err)

	ok, err = SetNX(ctx, "k", "fresh", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBasicOpsWithUnreachableRedis(t *testing.T) {
	cli := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0", // invalid/unreachable
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	SetClient(cli)
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, Set(ctx, "k", "v", time.Second))
	_, err := Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, Del(ctx, "k"))
	_, err = SetNX(ctx, "k", "v", time.Second)
	assert.Error(t, err)
}
