package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"swasthprameh/internal/config"
	"swasthprameh/internal/models"

	"github.com/redis/go-redis/v9"
)

// latestPlanTTL bounds staleness of the cached plan; the plans table stays
// the source of truth.
const latestPlanTTL = 24 * time.Hour

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is not configured")
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// StoreLatestPlan refreshes the per-user latest-plan entry after a
// successful generation.
func (r *RedisClient) StoreLatestPlan(userID uint, plan *models.GeneratedPlan) error {
	key := fmt.Sprintf("plan:latest:%d", userID)

	jsonData, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := r.client.Set(r.ctx, key, jsonData, latestPlanTTL).Err(); err != nil {
		return fmt.Errorf("failed to store plan in Redis: %w", err)
	}
	return nil
}

// GetLatestPlan returns the cached plan and whether the key existed.
func (r *RedisClient) GetLatestPlan(userID uint) (*models.GeneratedPlan, bool, error) {
	key := fmt.Sprintf("plan:latest:%d", userID)

	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get plan from Redis: %w", err)
	}

	var plan models.GeneratedPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached plan: %w", err)
	}

	return &plan, true, nil
}

// GetStatus reports connection pool health for the debug endpoint.
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
