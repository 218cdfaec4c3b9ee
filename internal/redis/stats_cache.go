package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lolrip/Drewbert-Overdose-Response-Network/internal/domain"
)

// StatsCache holds the latest stats snapshot so read traffic does not hit
// the aggregation procedure on every request. A miss returns (nil, nil).
type StatsCache struct {
	client *goredis.Client
	key    string
}

func NewStatsCache(r *Redis) *StatsCache {
	return &StatsCache{
		client: r.Client,
		key:    "stats:snapshot",
	}
}

func (c *StatsCache) Get(ctx context.Context) (*domain.AlertStats, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats domain.AlertStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.AlertStats, ttl time.Duration) error {
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
