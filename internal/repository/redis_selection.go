// Package repository persists the session-scoped order composition state
// (seat selection, concession cart, draft order) as JSON values in Redis,
// keyed by session token and bounded by a TTL. Nothing here outlives the
// checkout flow; expiry simply abandons the draft.
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

type RedisSelectionRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisSelectionRepository(client redis.UniversalClient, ttl time.Duration) *RedisSelectionRepository {
	return &RedisSelectionRepository{
		client: client,
		ttl:    ttl,
	}
}

func selectionKey(sessionID string) string {
	return fmt.Sprintf("selection:%s", sessionID)
}

// Get returns the session's selection, or an empty selection when none has
// been stored yet.
func (r *RedisSelectionRepository) Get(ctx context.Context, sessionID string) (domain.Selection, error) {
	data, err := r.client.Get(ctx, selectionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Selection{}, nil
		}

		return nil, err
	}

	var selection domain.Selection
	if err := json.Unmarshal(data, &selection); err != nil {
		return nil, err
	}

	return selection, nil
}

func (r *RedisSelectionRepository) Save(ctx context.Context, sessionID string, selection domain.Selection) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, selectionKey(sessionID), data, r.ttl).Err()
}

func (r *RedisSelectionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, selectionKey(sessionID)).Err()
}
