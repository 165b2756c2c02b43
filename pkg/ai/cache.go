package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"resume-builder/internal/logger"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by CacheBackend.Get for absent keys.
var ErrCacheMiss = errors.New("cache miss")

type CacheBackend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RedisCache is a CacheBackend on top of go-redis.
type RedisCache struct {
	client redis.UniversalClient
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return v, err
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Cached memoizes generations keyed by namespace, messages and token budget.
// Cache errors are logged and never fail the call.
type Cached struct {
	next      TextGenerator
	backend   CacheBackend
	namespace string
	ttl       time.Duration
}

func NewCached(next TextGenerator, backend CacheBackend, namespace string, ttl time.Duration) *Cached {
	return &Cached{next: next, backend: backend, namespace: namespace, ttl: ttl}
}

func (c *Cached) GenerateText(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	key := c.key(messages, maxTokens)

	if v, err := c.backend.Get(ctx, key); err == nil {
		logger.Debug().Str("key", key).Msg("ai.cache: hit")
		return v, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		logger.Warn().Err(err).Msg("ai.cache: get failed")
	}

	text, err := c.next.GenerateText(ctx, messages, maxTokens)
	if err != nil {
		return "", err
	}
	if text != "" {
		if err := c.backend.Set(ctx, key, text, c.ttl); err != nil {
			logger.Warn().Err(err).Msg("ai.cache: set failed")
		}
	}
	return text, nil
}

// Forget drops a memoized reply the caller could not use.
func (c *Cached) Forget(ctx context.Context, messages []Message, maxTokens int) {
	key := c.key(messages, maxTokens)
	if err := c.backend.Delete(ctx, key); err != nil {
		logger.Warn().Err(err).Msg("ai.cache: delete failed")
		return
	}
	logger.Debug().Str("key", key).Msg("ai.cache: dropped unusable reply")
}

func (c *Cached) key(messages []Message, maxTokens int) string {
	h := sha256.New()
	b, _ := json.Marshal(messages)
	h.Write(b)
	h.Write([]byte(strconv.Itoa(maxTokens)))
	return "ai:" + c.namespace + ":" + hex.EncodeToString(h.Sum(nil))
}
