package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdouxone/KFP/models"
)

// CartCache is a read-through cache in front of the authoritative Postgres
// cart. A miss is not an error; Postgres remains the source of truth.
type CartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartCache creates a CartCache with the given entry TTL.
func NewCartCache(client *redis.Client, ttl time.Duration) *CartCache {
	return &CartCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *CartCache) key(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

// Get returns the cached cart, or (nil, nil) on a miss.
func (c *CartCache) Get(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Set stores the validated cart under the user's key.
func (c *CartCache) Set(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(cart.UserID), data, c.ttl).Err()
}

// Invalidate drops the user's cached cart.
func (c *CartCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
