package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Bookmarker/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyList = "bookmark:list:"

// BookmarkCache caches per-user bookmark lists in Redis.
type BookmarkCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBookmarkCache returns a new BookmarkCache.
func NewBookmarkCache(rdb *redis.Client, ttl time.Duration) *BookmarkCache {
	return &BookmarkCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for the user or nil on miss.
func (c *BookmarkCache) GetList(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	b, err := c.rdb.Get(ctx, listKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Bookmark
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the user's list in cache.
func (c *BookmarkCache) SetList(ctx context.Context, userID int64, list []dom.Bookmark) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID), b, c.ttl).Err()
}

// Invalidate removes the user's cached list (cache invalidation on write).
func (c *BookmarkCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, listKey(userID)).Err()
}

func listKey(userID int64) string {
	return keyList + strconv.FormatInt(userID, 10)
}
