package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "usuarios:"

// Client wraps redis.Client but fails safe by swallowing connectivity errors:
// a broken redis behaves like an empty cache. A nil *Client is a valid no-op cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Ping checks connectivity. Unlike the other methods it reports the error.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errors.New("redis not configured")
	}
	return c.client.Ping(ctx).Err()
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, keyPrefix+key).Err()
	return nil
}

// Version reads an integer generation counter. Missing keys and redis errors
// read as 0.
func (c *Client) Version(ctx context.Context, key string) int64 {
	if c == nil || c.client == nil {
		return 0
	}
	n, err := c.client.Get(ctx, keyPrefix+key).Int64()
	if err != nil {
		return 0
	}
	return n
}

// Bump increments the generation counter at key, ignoring redis errors. Values
// cached under the previous generation are no longer read and expire by TTL.
func (c *Client) Bump(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Incr(ctx, keyPrefix+key).Err()
	return nil
}

// GetJSON decodes a cached JSON value into dst. It reports false on a miss or a
// payload that no longer decodes.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON encodes value as JSON and stores it with TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, payload, ttl)
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
