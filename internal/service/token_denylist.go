//go:generate mockery --name TokenDenylist --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TokenDenylist はログアウトしたアクセストークン (jti) を有効期限まで記録します。
// middleware.RevocationChecker を満たします。
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedKeyPrefix = "revoked:"

type redisTokenDenylist struct {
	rdb *goredis.Client
}

func NewRedisTokenDenylist(rdb *goredis.Client) TokenDenylist {
	return &redisTokenDenylist{rdb: rdb}
}

func (d *redisTokenDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// 既に期限切れのトークンは記録不要
		return nil
	}
	if err := d.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redisTokenDenylist.Revoke: %w", err)
	}
	return nil
}

func (d *redisTokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := d.rdb.Get(ctx, revokedKeyPrefix+jti).Err()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redisTokenDenylist.IsRevoked: %w", err)
	}
	return true, nil
}

// memoryTokenDenylist は Redis 未設定時 (開発・テスト) に使います
type memoryTokenDenylist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenDenylist() TokenDenylist {
	return &memoryTokenDenylist{entries: make(map[string]time.Time), now: time.Now}
}

func (d *memoryTokenDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if !until.After(now) {
		return nil
	}
	for k, exp := range d.entries {
		if !exp.After(now) {
			delete(d.entries, k)
		}
	}
	d.entries[jti] = until
	return nil
}

func (d *memoryTokenDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	exp, ok := d.entries[jti]
	if !ok {
		return false, nil
	}
	if !exp.After(d.now()) {
		delete(d.entries, jti)
		return false, nil
	}
	return true, nil
}
