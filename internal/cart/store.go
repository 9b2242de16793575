package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCorruptCart signals that the persisted cart could not be decoded.
// Callers downgrade to an empty cart.
var ErrCorruptCart = errors.New("corrupt persisted cart")

// Store is the durable mirror of the in-memory cart: one key per user
// holding the full serialized cart. It is write-through only, never a
// second source of truth.
type Store interface {
	Load(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, userID string, c Cart) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Load returns (nil, nil) when no cart was stored for the user.
func (s *redisStore) Load(ctx context.Context, userID string) (*Cart, error) {
	val, err := s.client.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}

	return &c, nil
}

func (s *redisStore) Save(ctx context.Context, userID string, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("error saving cart: %w", err)
	}

	return nil
}
