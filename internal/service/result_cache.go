package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultCache maps a session id to the diagnosis record it already produced,
// so a retake with the same session id is served the stored outcome instead
// of being rescored.
type ResultCache interface {
	Put(sessionID, recordID string, ttl time.Duration) error
	Get(sessionID string) (string, bool, error)
}

type memoryResultCache struct {
	mu    sync.Mutex
	items map[string]memoryCacheItem
}

type memoryCacheItem struct {
	recordID  string
	expiresAt time.Time
}

func NewMemoryResultCache() ResultCache {
	return &memoryResultCache{
		items: make(map[string]memoryCacheItem),
	}
}

func (c *memoryResultCache) Put(sessionID, recordID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	c.items[sessionID] = memoryCacheItem{
		recordID:  recordID,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (c *memoryResultCache) Get(sessionID string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[sessionID]
	if !ok {
		return "", false, nil
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, sessionID)
		return "", false, nil
	}
	return item.recordID, true, nil
}

type redisResultCache struct {
	client *redis.Client
	prefix string
}

func NewRedisResultCache(client *redis.Client) ResultCache {
	if client == nil {
		return nil
	}
	return &redisResultCache{
		client: client,
		prefix: "diagnosis:session:",
	}
}

func (c *redisResultCache) Put(sessionID, recordID string, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+sessionID, recordID, ttl).Err()
}

func (c *redisResultCache) Get(sessionID string) (string, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	recordID, err := c.client.Get(ctx, c.prefix+sessionID).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return recordID, true, nil
}
