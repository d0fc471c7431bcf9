// internal/adapters/redis/session.go
package redis_a

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// SessionKeyPrefix namespaces the per-session keys
type SessionKeyPrefix string

const (
	PrefixBasket SessionKeyPrefix = "basket"
	PrefixLeader SessionKeyPrefix = "leader"
)

// BuildKey creates a session key: session:<id>:<prefix>
func BuildKey(sessionID string, prefix SessionKeyPrefix) string {
	return "session:" + sessionID + ":" + string(prefix)
}

// SessionStore keeps baskets and leader flags in Redis with a sliding TTL:
// every read or write of a key pushes its expiry out again.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// Statically assert that *SessionStore implements the port.
var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a session store with the given session TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Basket loads the session basket. A missing key is an empty basket, not an
// error.
func (s *SessionStore) Basket(ctx context.Context, sessionID string) (*domain.Basket, error) {
	key := BuildKey(sessionID, PrefixBasket)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Basket{}, nil
		}
		s.logger.ErrorContext(ctx, "failed to get basket",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var basket domain.Basket
	if err := json.Unmarshal(data, &basket); err != nil {
		s.logger.ErrorContext(ctx, "failed to unmarshal basket",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	s.touch(ctx, sessionID)

	return &basket, nil
}

// SaveBasket stores the basket and refreshes the session TTL.
func (s *SessionStore) SaveBasket(ctx context.Context, sessionID string, basket *domain.Basket) error {
	key := BuildKey(sessionID, PrefixBasket)

	data, err := json.Marshal(basket)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to save basket",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "basket saved",
		slog.String("session_id", sessionID),
		slog.Int("lines", len(basket.Lines)))

	return nil
}

// ClearBasket removes the session basket.
func (s *SessionStore) ClearBasket(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, BuildKey(sessionID, PrefixBasket)).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

// SetLeader marks the session as leader-authenticated.
func (s *SessionStore) SetLeader(ctx context.Context, sessionID string) error {
	key := BuildKey(sessionID, PrefixLeader)
	if err := s.client.Set(ctx, key, "1", s.ttl).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to set leader flag",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// IsLeader reports whether the session holds the leader flag.
func (s *SessionStore) IsLeader(ctx context.Context, sessionID string) (bool, error) {
	key := BuildKey(sessionID, PrefixLeader)
	_, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis get error: %w", err)
	}
	s.touch(ctx, sessionID)
	return true, nil
}

// ClearLeader drops the leader flag.
func (s *SessionStore) ClearLeader(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, BuildKey(sessionID, PrefixLeader)).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

// Ping checks if Redis is accessible
func (s *SessionStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping error: %w", err)
	}
	return nil
}

// touch slides the TTL of both session keys. Failures are logged only; a read
// should never fail because an expiry refresh did.
func (s *SessionStore) touch(ctx context.Context, sessionID string) {
	for _, prefix := range []SessionKeyPrefix{PrefixBasket, PrefixLeader} {
		if err := s.client.Expire(ctx, BuildKey(sessionID, prefix), s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "failed to refresh session ttl",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()))
		}
	}
}
