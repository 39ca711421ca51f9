package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects the process-wide Redis client. The cache is optional:
// callers tolerate a nil client.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without cache")
		return nil, err
	}
	return client, nil
}

// StatsCache fronts the channel-stats aggregation with a short TTL so hot
// channel pages don't re-run the group/lookup on every request.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) repository.IStatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func statsKey(channelID string) string {
	return fmt.Sprintf("channel:stats:%s", channelID)
}

func (c *StatsCache) GetChannelStats(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, statsKey(channelID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SetChannelStats is best effort; a failed write only costs a cache miss.
func (c *StatsCache) SetChannelStats(ctx context.Context, channelID string, stats *model.ChannelStats) {
	if c.client == nil || stats == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while marshalling channel stats")
		return
	}
	if err := c.client.Set(ctx, statsKey(channelID), raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error while caching channel stats")
	}
}
