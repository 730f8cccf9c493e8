package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cartCountTTL = 10 * time.Minute

// Client caches small hot reads, currently the cart badge count. The
// database stays the source of truth; every lookup has a DB fallback and
// every cart mutation invalidates the key.
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis cache client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func cartCountKey(userID int64) string {
	return fmt.Sprintf("cart:count:%d", userID)
}

// GetCartCount returns the cached badge count for the user. The second
// return value reports whether the key was present.
func (c *Client) GetCartCount(ctx context.Context, userID int64) (int, bool, error) {
	count, err := c.rdb.Get(ctx, cartCountKey(userID)).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

// SetCartCount stores the badge count for the user
func (c *Client) SetCartCount(ctx context.Context, userID int64, count int) error {
	return c.rdb.Set(ctx, cartCountKey(userID), count, cartCountTTL).Err()
}

// InvalidateCartCount drops the cached badge count after a cart mutation
func (c *Client) InvalidateCartCount(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, cartCountKey(userID)).Err()
}
