package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/healthbot/backend/internal/storage/models"
	"github.com/healthbot/backend/pkg/logger"
)

// Client is a read-through cache for user lookups. The sqlite store stays
// authoritative; entries expire on TTL and are dropped on profile updates.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(host string, port int, password string, db int, ttl time.Duration) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis client initialized", zap.String("addr", fmt.Sprintf("%s:%d", host, port)))

	return &Client{client: client, ttl: ttl}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) SetUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	err = c.client.Set(ctx, userKey(user.ID), data, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set user cache: %w", err)
	}

	logger.Debug("User cached", zap.Int64("user_id", user.ID), zap.Duration("ttl", c.ttl))
	return nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, bool, error) {
	data, err := c.client.Get(ctx, userKey(id)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user cache: %w", err)
	}

	var user models.User
	err = json.Unmarshal(data, &user)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	logger.Debug("User cache hit", zap.Int64("user_id", id))
	return &user, true, nil
}

func (c *Client) InvalidateUser(ctx context.Context, id int64) error {
	err := c.client.Del(ctx, userKey(id)).Err()
	if err != nil {
		return fmt.Errorf("failed to invalidate user cache: %w", err)
	}

	logger.Debug("User cache invalidated", zap.Int64("user_id", id))
	return nil
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}
