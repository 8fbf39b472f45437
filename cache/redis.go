package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrMiss = errors.New("cache miss")

type Client struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewClient(ctx context.Context, addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(pingCtx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return &Client{rdb: rdb, prefix: "hackhub:"}, nil
}

// NewFromRedis wraps an existing client; used by tests and by callers that
// manage the connection themselves.
func NewFromRedis(rdb redis.UniversalClient) *Client {
	return &Client{rdb: rdb, prefix: "hackhub:"}
}

func (c *Client) key(k string) string {
	return c.prefix + k
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}

func (c *Client) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(key), data, ttl).Err()
}

func (c *Client) GetJSON(ctx context.Context, key string, target interface{}) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// allowScript opens the window on the first hit only, so later hits in the
// same window never extend it.
var allowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// Allow counts a hit against key and reports whether the caller is still
// under limit for the current fixed window.
func (c *Client) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := allowScript.Run(ctx, c.rdb, []string{c.key("ratelimit:" + key)}, window.Milliseconds()).Int64()
	if err != nil {
		return true, err
	}
	return n <= int64(limit), nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
