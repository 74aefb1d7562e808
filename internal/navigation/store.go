package navigation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"dojo_path/internal/model"

	goredis "github.com/redis/go-redis/v9"
)

// Store は利用者ごとの画面遷移状態を保存します
type Store interface {
	// Load は保存済みの状態を返します。無ければ found=false。
	Load(ctx context.Context, key string) (state model.NavigationState, found bool, err error)
	Save(ctx context.Context, key string, state model.NavigationState) error
	Delete(ctx context.Context, key string) error
}

const redisKeyPrefix = "nav:"

type redisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore は Redis に JSON で状態を保存するストアを返します
func NewRedisStore(rdb *goredis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, key string) (model.NavigationState, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return model.NavigationState{}, false, nil
		}
		return model.NavigationState{}, false, fmt.Errorf("redisStore.Load: %w", err)
	}
	var st model.NavigationState
	if err := json.Unmarshal(raw, &st); err != nil {
		return model.NavigationState{}, false, fmt.Errorf("redisStore.Load: decode: %w", err)
	}
	return st, true, nil
}

func (s *redisStore) Save(ctx context.Context, key string, state model.NavigationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("redisStore.Save: encode: %w", err)
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redisStore.Save: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redisStore.Delete: %w", err)
	}
	return nil
}

// memoryStore は Redis 未設定時とテスト用のプロセス内ストア
type memoryStore struct {
	mu     sync.Mutex
	states map[string]model.NavigationState
}

func NewMemoryStore() Store {
	return &memoryStore{states: make(map[string]model.NavigationState)}
}

func (s *memoryStore) Load(_ context.Context, key string) (model.NavigationState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[key]
	if !ok {
		return model.NavigationState{}, false, nil
	}
	// 呼び出し側の変更が保存済みの履歴に影響しないようにコピーを返す
	st.History = append([]model.PageRef(nil), st.History...)
	return st, true, nil
}

func (s *memoryStore) Save(_ context.Context, key string, state model.NavigationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.History = append([]model.PageRef(nil), state.History...)
	s.states[key] = state
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
	return nil
}
