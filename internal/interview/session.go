package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const sessionKeyPrefix = "symcheck:interview:"

// SessionStore persists wizard aggregates keyed by session id.
type SessionStore interface {
	// Load returns the session's interview, or an empty one when none exists.
	Load(ctx context.Context, sessionID string) (*Interview, error)
	Save(ctx context.Context, sessionID string, iv *Interview) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
	Close() error
}

// KVSessionStore stores aggregates as JSON in a KVStore. Every save
// refreshes the TTL.
type KVSessionStore struct {
	kv  KVStore
	ttl time.Duration
}

// NewKVSessionStore creates a session store over kv.
func NewKVSessionStore(kv KVStore, ttl time.Duration) *KVSessionStore {
	return &KVSessionStore{kv: kv, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *KVSessionStore) Load(ctx context.Context, sessionID string) (*Interview, error) {
	raw, err := s.kv.Get(ctx, sessionKey(sessionID))
	if errors.Is(err, ErrCacheMiss) {
		return &Interview{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var iv Interview
	if err := json.Unmarshal([]byte(raw), &iv); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &iv, nil
}

func (s *KVSessionStore) Save(ctx context.Context, sessionID string, iv *Interview) error {
	raw, err := json.Marshal(iv)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, sessionKey(sessionID), string(raw), s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *KVSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Del(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *KVSessionStore) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

func (s *KVSessionStore) Close() error {
	return s.kv.Close()
}
