package rediscache

import (
  "context"
  "encoding/json"
  "time"
  "github.com/redis/go-redis/v9"
  "github.com/langfu/langfu-backend/internal/logger"
  "github.com/langfu/langfu-backend/internal/utils"
)

// Cache is a small read-through JSON cache. Every failure is soft: callers
// fall back to postgres and the miss is only logged.
type Cache struct {
  client  *redis.Client
  log     *logger.Logger
  ttl     time.Duration
}

// NewFromEnv returns nil when REDIS_ADDR is unset; a nil *Cache is a no-op.
func NewFromEnv(log *logger.Logger) *Cache {
  addr := utils.GetEnv("REDIS_ADDR", "", nil)
  if addr == "" {
    log.Info("REDIS_ADDR not set, response caching disabled")
    return nil
  }
  ttl := utils.GetEnvAsSeconds("REDIS_CACHE_TTL", 300, nil)
  client := redis.NewClient(&redis.Options{
    Addr:     addr,
    Password: utils.GetEnv("REDIS_PASSWORD", "", nil),
  })
  return &Cache{
    client: client,
    log:    log.With("client", "RedisCache"),
    ttl:    ttl,
  }
}

func (c *Cache) GetJSON(ctx context.Context, key string, out any) bool {
  if c == nil {
    return false
  }
  raw, err := c.client.Get(ctx, key).Bytes()
  if err != nil {
    if err != redis.Nil {
      c.log.Debug("Cache get failed", "key", key, "error", err)
    }
    return false
  }
  if err := json.Unmarshal(raw, out); err != nil {
    c.log.Debug("Cache entry undecodable, dropping", "key", key, "error", err)
    _ = c.client.Del(ctx, key).Err()
    return false
  }
  return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
  if c == nil {
    return
  }
  raw, err := json.Marshal(val)
  if err != nil {
    c.log.Debug("Cache set skipped, value not encodable", "key", key, "error", err)
    return
  }
  if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
    c.log.Debug("Cache set failed", "key", key, "error", err)
  }
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
  if c == nil || len(keys) == 0 {
    return
  }
  if err := c.client.Del(ctx, keys...).Err(); err != nil {
    c.log.Debug("Cache delete failed", "keys", keys, "error", err)
  }
}
