package scanner

import (
	"context"
	"encoding/json"
	"fmt"

	"nutriplan-api/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// ProductCache caches fetched product records in redis so repeat scans of
// the same barcode skip the external service.
type ProductCache struct {
	client *redis.Client
	config *config.RedisConfig
}

// NewProductCache connects to redis. A disabled config yields a no-op cache.
func NewProductCache(cfg *config.RedisConfig) (*ProductCache, error) {
	if !cfg.Enabled {
		return &ProductCache{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ProductCache{
		client: client,
		config: cfg,
	}, nil
}

// Get returns a cached product, or an error on miss or disabled cache.
func (c *ProductCache) Get(ctx context.Context, barcode string) (*Product, error) {
	if !c.config.Enabled || c.client == nil {
		return nil, fmt.Errorf("cache is disabled")
	}

	data, err := c.client.Get(ctx, c.key(barcode)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cache miss")
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var product Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached product: %w", err)
	}
	return &product, nil
}

// Set stores a product under its barcode with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, barcode string, product *Product) error {
	if !c.config.Enabled || c.client == nil {
		return nil
	}

	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	if err := c.client.Set(ctx, c.key(barcode), data, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close releases the redis connection.
func (c *ProductCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *ProductCache) key(barcode string) string {
	return fmt.Sprintf("foodfacts:product:%s", barcode)
}
