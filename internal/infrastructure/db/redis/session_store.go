package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// sessionKey is the fixed namespace key the snapshot lives under. The whole
// session is one record: {is_authenticated, user}.
const sessionKey = "dashboard:auth:session"

// SessionStore persists the session snapshot in Redis so a restart
// rehydrates the last session. A missing or corrupt record degrades to the
// anonymous session rather than failing the caller.
type SessionStore struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewSessionStore(client *redis.Client, logger zerolog.Logger) *SessionStore {
	return &SessionStore{client: client, logger: logger}
}

func (s *SessionStore) Load(ctx context.Context) (domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Anonymous(), nil
		}
		return domain.Anonymous(), fmt.Errorf("load session: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt session snapshot, discarding")
		return domain.Anonymous(), nil
	}
	return sess, nil
}

func (s *SessionStore) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
