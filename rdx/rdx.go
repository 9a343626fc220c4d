package rdx

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps the redis client used for hot read paths. All operations
// are best effort: a nil Cache or an unreachable redis degrades to
// direct database reads, never to request failure.
type Cache struct {
	Conn *redis.Client
}

// New connects to redis at addr. Returns nil when addr is empty or the
// server does not answer a ping, so callers can treat the cache as
// optional.
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	conn := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := conn.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, caching disabled: %v", addr, err)
		return nil
	}
	return &Cache{Conn: conn}
}

func (c *Cache) RdxGet(key string) (string, error) {
	if c == nil {
		return "", redis.Nil
	}
	return c.Conn.Get(context.Background(), key).Result()
}

func (c *Cache) RdxSet(key, value string) error {
	if c == nil {
		return nil
	}
	return c.Conn.Set(context.Background(), key, value, 10*time.Minute).Err()
}

func (c *Cache) RdxDel(key string) error {
	if c == nil {
		return nil
	}
	return c.Conn.Del(context.Background(), key).Err()
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.Conn.Close()
}
