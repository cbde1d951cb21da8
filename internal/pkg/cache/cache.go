package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"brand-directory-api/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// BrandsPageTTL is how long a cached brand list page stays valid.
const BrandsPageTTL = 300 * time.Second

// SetupCache initializes the connection to the redis cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to redis cache: %v", err)
	} else {
		log.Printf("Successfully connected to redis cache: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	return GetClient().Del(ctx, key).Err()
}

// FlushAll empties the whole cache database.
func FlushAll() error {
	return GetClient().FlushDB(ctx).Err()
}

// PageKey builds the cache key for one brand list page. The resolved country
// is part of the key so a cached page is never served to a visitor from a
// different country.
func PageKey(page, perPage int, country string) string {
	return fmt.Sprintf("brands:page:%d:%d:%s", page, perPage, country)
}

// BrandCache is the cache collaborator the brand controller talks to.
// Write operations invalidate with full-flush semantics.
type BrandCache interface {
	GetPage(key string) (string, bool)
	SetPage(key, payload string)
	InvalidateAll()
}

type redisBrandCache struct{}

// NewBrandCache returns a BrandCache backed by the shared redis client.
func NewBrandCache() BrandCache {
	return redisBrandCache{}
}

func (redisBrandCache) GetPage(key string) (string, bool) {
	val, err := Get(key)
	if err != nil {
		return "", false
	}
	return val, true
}

func (redisBrandCache) SetPage(key, payload string) {
	if err := Set(key, payload, BrandsPageTTL); err != nil {
		log.Printf("Warning: could not cache %s: %v", key, err)
	}
}

func (redisBrandCache) InvalidateAll() {
	if err := FlushAll(); err != nil {
		log.Printf("Warning: could not flush brand cache: %v", err)
	}
}
