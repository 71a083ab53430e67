package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cinetix/internal/domain"
)

type RedisCartRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCartRepository(client redis.UniversalClient, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Get returns the session's cart, or a fresh empty cart when none exists.
func (r *RedisCartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewCart(), nil
		}

		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}

	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	if cart.Pending == nil {
		cart.Pending = map[int]int{}
	}

	return &cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, cartKey(sessionID), data, r.ttl).Err()
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, cartKey(sessionID)).Err()
}
