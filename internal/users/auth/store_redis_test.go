// Copyright (c) 2026 ReadTrace. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readtrace/readtrace/internal/users/auth"
)

func newTestStore(t *testing.T) (*auth.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewSessionStore(client), mr
}

func testSession(tokenHash string) *auth.Session {
	return &auth.Session{
		UserID:    "user-1",
		TokenHash: tokenHash,
		UserAgent: "test-agent",
		IPAddress: "203.0.113.7",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

/*
TestSessionStore_SaveAndFind verifies a saved session round-trips through
Redis with its token hash restored from the key.
*/
func TestSessionStore_SaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("hash-1")))

	found, err := store.Find(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.UserID)
	assert.Equal(t, "hash-1", found.TokenHash)
	assert.Equal(t, "test-agent", found.UserAgent)
}

/*
TestSessionStore_FindUnknown verifies lookups for unknown token hashes fail.
*/
func TestSessionStore_FindUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Find(context.Background(), "missing")
	require.Error(t, err)
}

/*
TestSessionStore_Revoke verifies a revoked session can no longer be found
and revoking twice is harmless.
*/
func TestSessionStore_Revoke(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("hash-2")))
	require.NoError(t, store.Revoke(ctx, "hash-2"))

	_, err := store.Find(ctx, "hash-2")
	require.Error(t, err)

	require.NoError(t, store.Revoke(ctx, "hash-2"))
}

/*
TestSessionStore_Expiry verifies sessions disappear once their TTL elapses.
*/
func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	session := testSession("hash-3")
	session.ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(2 * time.Minute)

	_, err := store.Find(ctx, "hash-3")
	require.Error(t, err)
}

/*
TestSessionStore_RejectsExpiredSession verifies a session that is already
past its expiry is never written.
*/
func TestSessionStore_RejectsExpiredSession(t *testing.T) {
	store, _ := newTestStore(t)

	session := testSession("hash-4")
	session.ExpiresAt = time.Now().Add(-time.Minute)

	err := store.Save(context.Background(), session)
	require.Error(t, err)
}
