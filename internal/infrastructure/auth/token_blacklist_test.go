package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/peoplemanager/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_Revoke(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.Revoke(ctx, "test-jti-1", 1*time.Hour)
	require.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, "test-jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// A different JTI is not affected
	revoked, err = blacklist.IsRevoked(ctx, "test-jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_NonPositiveTTLIsNoOp(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.Revoke(ctx, "already-expired", 0)
	require.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, "already-expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_ExpirationCleanup(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.Revoke(ctx, "short-lived", 1*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	revoked, err := blacklist.IsRevoked(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_MultipleTokens(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		jti := "test-jti-" + string(rune('a'+i))
		err := blacklist.Revoke(ctx, jti, 1*time.Hour)
		require.NoError(t, err)
	}

	for i := 0; i < 10; i++ {
		jti := "test-jti-" + string(rune('a'+i))
		revoked, err := blacklist.IsRevoked(ctx, jti)
		require.NoError(t, err)
		assert.True(t, revoked, "token %s should be revoked", jti)
	}

	revoked, err := blacklist.IsRevoked(ctx, "never-revoked")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenBlacklist_Interface(t *testing.T) {
	var _ auth.TokenBlacklist = (*auth.InMemoryTokenBlacklist)(nil)
	var _ auth.TokenBlacklist = (*auth.RedisTokenBlacklist)(nil)
	var _ auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
}
