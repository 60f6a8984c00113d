package redis

import (
	"context"
	"fmt"
	"testing"

	"frame-notify-srv/pkg/kv"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := Wrap(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestGetPutDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestClient(t)

	_, err := c.Get(ctx, "user:1")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, c.Put(ctx, "user:1", []byte(`{"token":"a"}`)))
	require.NoError(t, c.Put(ctx, "user:1", []byte(`{"token":"b"}`)))
	got, err := c.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, `{"token":"b"}`, string(got))
	assert.True(t, mr.Exists("user:1"))

	require.NoError(t, c.Delete(ctx, "user:1"))
	require.NoError(t, c.Delete(ctx, "user:1"))
	_, err = c.Get(ctx, "user:1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestScanPagesThroughPrefix(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestClient(t)

	const total = 250
	for i := 0; i < total; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("frame:user:%d", i), "{}"))
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("other:%d", i), "{}"))
	}

	seen := map[string]bool{}
	cursor := ""
	for pages := 0; ; pages++ {
		require.Less(t, pages, total, "scan did not terminate")
		keys, next, err := c.Scan(ctx, "frame:user:", cursor, 50)
		require.NoError(t, err)
		for _, k := range keys {
			assert.Contains(t, k, "frame:user:")
			seen[k] = true
		}
		if next == "" {
			break
		}
		assert.NotEqual(t, "0", next)
		cursor = next
	}
	assert.Len(t, seen, total)
}

func TestScanEmpty(t *testing.T) {
	c, _ := newTestClient(t)

	keys, next, err := c.Scan(context.Background(), "frame:user:", "", 0)
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Equal(t, "", next)
}

func TestScanInvalidCursor(t *testing.T) {
	c, _ := newTestClient(t)

	_, _, err := c.Scan(context.Background(), "frame:user:", "not-a-number", 10)
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPing(t *testing.T) {
	c, _ := newTestClient(t)
	assert.NoError(t, c.Ping(context.Background()))
}
