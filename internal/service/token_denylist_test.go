package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenDenylist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	d := NewMemoryTokenDenylist().(*memoryTokenDenylist)
	d.now = func() time.Time { return now }

	require.NoError(t, d.Revoke(ctx, "live", now.Add(time.Hour)))
	require.NoError(t, d.Revoke(ctx, "expired", now.Add(-time.Second)))

	revoked, err := d.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = d.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked, "期限切れのトークンは記録しない")

	// 有効期限を過ぎたら失効リストからも消える
	now = now.Add(2 * time.Hour)
	revoked, err = d.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Empty(t, d.entries)
}
