// Package cache provides a Redis-backed page cache for scraped HTML. Stat
// pages for finished seasons never change, so caching them spares the source
// sites repeat traffic during multi-category assemblies.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps pages for a day; long enough to cover a scraping session,
// short enough that an in-progress season refreshes.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "gridiron:page:"

// PageCache stores raw HTML bodies keyed by URL
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache from a redis URL and verifies the
// connection before returning
func NewPageCache(redisURL string) (*PageCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &PageCache{
		client: client,
		ttl:    DefaultTTL,
	}, nil
}

// SetTTL overrides the expiry applied to cached pages
func (pc *PageCache) SetTTL(ttl time.Duration) {
	pc.ttl = ttl
}

// Close closes the Redis connection
func (pc *PageCache) Close() error {
	return pc.client.Close()
}

// HealthCheck pings Redis to verify connection
func (pc *PageCache) HealthCheck(ctx context.Context) error {
	return pc.client.Ping(ctx).Err()
}

// Get retrieves a cached page by URL. Cache errors degrade to a miss so a
// flaky Redis never fails a scrape.
func (pc *PageCache) Get(ctx context.Context, url string) (string, bool) {
	html, err := pc.client.Get(ctx, keyPrefix+url).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("[cache] get %s: %v", url, err)
		return "", false
	}
	return html, true
}

// Set stores a page body under its URL with the configured TTL
func (pc *PageCache) Set(ctx context.Context, url, html string) {
	if err := pc.client.Set(ctx, keyPrefix+url, html, pc.ttl).Err(); err != nil {
		log.Printf("[cache] set %s: %v", url, err)
	}
}

// Delete evicts cached pages by URL
func (pc *PageCache) Delete(ctx context.Context, urls ...string) error {
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = keyPrefix + u
	}
	return pc.client.Del(ctx, keys...).Err()
}
