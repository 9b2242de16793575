package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type cachedService struct {
	next        Service
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewCachedService(next Service, redisClient *redis.Client) Service {
	return &cachedService{
		next:        next,
		redisClient: redisClient,
		cacheTTL:    time.Minute * 10,
	}
}

func (s *cachedService) List(ctx context.Context) ([]Product, error) {
	return s.next.List(ctx)
}

func (s *cachedService) GetByID(ctx context.Context, id string) (*Product, error) {
	key := fmt.Sprintf("product:%s", id)

	val, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		var product Product
		if err := json.Unmarshal([]byte(val), &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(product); err == nil {
		s.redisClient.Set(ctx, key, data, s.cacheTTL)
	}

	return product, nil
}

func (s *cachedService) Seed(ctx context.Context, products []Product) (int, error) {
	inserted, err := s.next.Seed(ctx, products)
	if err != nil {
		return inserted, err
	}

	for _, p := range products {
		s.redisClient.Del(ctx, fmt.Sprintf("product:%s", p.ID))
	}

	return inserted, nil
}
