package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreWithClient(client, ttl), mr
}

func TestRedisStoreLifecycle(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{Username: "admin", Role: "admin"})
	require.NoError(t, err)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "admin", sess.Username)
	require.True(t, sess.IsAdmin())

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{Username: "alice", Role: "user"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)

	_, err := store.Get(context.Background(), "deadbeef")
	require.ErrorIs(t, err, ErrNotFound)
}
