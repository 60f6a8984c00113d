package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"frame-notify-srv/pkg/kv"

	goredis "github.com/redis/go-redis/v9"
)

var _ kv.Store = (*Client)(nil)

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key. DEL on a missing key returns 0, which is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Scan wraps SCAN MATCH <prefix>*. The cursor is Redis' numeric cursor rendered as
// a decimal string; "0" from Redis is reported as "" (done).
func (c *Client) Scan(ctx context.Context, prefix, cursor string, count int) ([]string, string, error) {
	var cur uint64
	if cursor != "" {
		parsed, err := strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			return nil, "", ErrInvalidCursor
		}
		cur = parsed
	}
	if count <= 0 {
		count = DefaultScanCount
	}

	keys, next, err := c.client.Scan(ctx, cur, escapeGlob(prefix)+"*", int64(count)).Result()
	if err != nil {
		return nil, "", err
	}
	if next == 0 {
		return keys, "", nil
	}
	return keys, strconv.FormatUint(next, 10), nil
}

// Ping checks if the connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// escapeGlob quotes the characters MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
