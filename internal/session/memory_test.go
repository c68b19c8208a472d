package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{Username: "alice", Role: "user"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, "user", sess.Role)
	require.False(t, sess.IsAdmin())

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	t.Cleanup(store.Close)
	ctx := context.Background()

	token, err := store.Create(ctx, Session{Username: "alice", Role: "user"})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)

	_, err := store.Get(context.Background(), "deadbeef")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Create(ctx, Session{Username: "u"})
		require.NoError(t, err)
		require.Len(t, token, 64)
		require.False(t, seen[token])
		seen[token] = true
	}
}
