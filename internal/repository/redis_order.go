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

type RedisOrderRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisOrderRepository(client redis.UniversalClient, ttl time.Duration) *RedisOrderRepository {
	return &RedisOrderRepository{
		client: client,
		ttl:    ttl,
	}
}

func orderKey(sessionID string) string {
	return fmt.Sprintf("order:%s", sessionID)
}

func (r *RedisOrderRepository) Get(ctx context.Context, sessionID string) (*domain.Order, error) {
	data, err := r.client.Get(ctx, orderKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOrderNotFound
		}

		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *RedisOrderRepository) Save(ctx context.Context, sessionID string, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, orderKey(sessionID), data, r.ttl).Err()
}

func (r *RedisOrderRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, orderKey(sessionID)).Err()
}
