package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedback-portal/internal/cache"
	"feedback-portal/internal/model"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var (
	randRead      = rand.Read
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

// SessionStore 將登入後的身分存放於 Redis，key 為隨機 session id
type SessionStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewSessionStore(c cache.Cache, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: c, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create 產生 32 bytes 隨機 id 並寫入身分
func (s *SessionStore) Create(ctx context.Context, p model.Principal) (string, error) {
	b := make([]byte, 32)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	id := base64.RawURLEncoding.EncodeToString(b)

	data, err := jsonMarshal(p)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKey(id), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Get 讀取 session；不存在或已過期時回傳 ErrSessionNotFound
func (s *SessionStore) Get(ctx context.Context, id string) (*model.Principal, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	val, err := s.cache.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var p model.Principal
	if err := jsonUnmarshal([]byte(val), &p); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if !p.Role.Valid() {
		return nil, ErrSessionNotFound
	}
	return &p, nil
}

// Delete 移除 session，重複刪除不視為錯誤
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.cache.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
