package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"waybook/models"
	"waybook/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements Store on Redis, one JSON value per sender with a
// TTL so abandoned dialogs decay back to the implicit start state.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		Client: client,
		TTL:    ttl,
		locks:  make(map[string]*sync.Mutex),
	}
}

func sessionKey(sender string) string {
	return utils.SessionKeyPrefix + sender
}

func (s *RedisStore) Get(ctx context.Context, sender string) (*models.Session, error) {
	data, err := s.Client.Get(ctx, sessionKey(sender)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session for %s: %w", sender, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session for %s: %w", sender, err)
	}
	if err := sess.Valid(); err != nil {
		return nil, fmt.Errorf("stored session for %s is malformed: %w", sender, err)
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess models.Session) error {
	if err := sess.Valid(); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session for %s: %w", sess.Sender, err)
	}
	if err := s.Client.Set(ctx, sessionKey(sess.Sender), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session for %s: %w", sess.Sender, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sender string) error {
	if err := s.Client.Del(ctx, sessionKey(sender)).Err(); err != nil {
		return fmt.Errorf("failed to delete session for %s: %w", sender, err)
	}
	return nil
}

// WithSenderLock serializes message handling per sender. Lock entries are
// kept for the life of the process; the set is bounded by distinct senders.
func (s *RedisStore) WithSenderLock(sender string, fn func() error) error {
	s.mu.Lock()
	lock, ok := s.locks[sender]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sender] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}
