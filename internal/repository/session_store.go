package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barberbook/internal/domain"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps conversation state in Redis, one key per
// (shop, phone). The key TTL mirrors the session's expires_at, so a
// lapsed conversation simply disappears and the next message starts a
// fresh welcome session.
type SessionStore struct {
	redis *redis.Client
	ttl   time.Duration
	now   func() time.Time
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{
		redis: rdb,
		ttl:   ttl,
		now:   time.Now,
	}
}

func sessionKey(shopID int64, phone string) string {
	return fmt.Sprintf("session:%d:%s", shopID, phone)
}

// LoadOrCreate returns the live session for (shop, phone), or replaces
// a missing/expired one with a fresh welcome session.
func (s *SessionStore) LoadOrCreate(ctx context.Context, shopID int64, phone string) (*domain.ConversationSession, error) {
	key := sessionKey(shopID, phone)

	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("session: load %s: %w", key, err)
	}

	if err == nil {
		var sess domain.ConversationSession
		if jsonErr := json.Unmarshal(data, &sess); jsonErr == nil && !sess.Expired(s.now()) {
			return &sess, nil
		}
		// Corrupt or expired payload: fall through and replace it.
	}

	now := s.now()
	sess := &domain.ConversationSession{
		ShopID:    shopID,
		Phone:     phone,
		Step:      domain.StepWelcome,
		TempData:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.write(ctx, key, sess, s.ttl); err != nil {
		return nil, err
	}
	return sess, nil
}

// Update overwrites step and temp data without extending the expiry:
// the conversation still lapses s.ttl after it was last (re)created.
func (s *SessionStore) Update(ctx context.Context, shopID int64, phone string, step domain.Step, tempData map[string]any) error {
	key := sessionKey(shopID, phone)

	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("session: load %s: %w", key, err)
	}

	now := s.now()
	sess := domain.ConversationSession{
		ShopID:    shopID,
		Phone:     phone,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err == nil {
		_ = json.Unmarshal(data, &sess)
	}

	sess.Step = step
	sess.TempData = tempData
	if sess.TempData == nil {
		sess.TempData = map[string]any{}
	}
	sess.UpdatedAt = now

	// If the key vanished between the webhook's load and this update,
	// fall back to a full TTL instead of persisting the key forever.
	ttl := time.Duration(redis.KeepTTL)
	if err == redis.Nil {
		ttl = s.ttl
	}
	return s.write(ctx, key, &sess, ttl)
}

// Reset puts the conversation back at the welcome step with nothing
// selected. Used for the global "cancelar"/"0" command.
func (s *SessionStore) Reset(ctx context.Context, shopID int64, phone string) error {
	return s.Update(ctx, shopID, phone, domain.StepWelcome, map[string]any{})
}

func (s *SessionStore) write(ctx context.Context, key string, sess *domain.ConversationSession, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: marshal %s: %w", key, err)
	}
	if err := s.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("session: persist %s: %w", key, err)
	}
	return nil
}
