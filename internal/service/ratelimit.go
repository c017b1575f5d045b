package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, key, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)

	wasSet, err := rdb.SetNX(ctx, redisKey, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, key, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	redisKey := fmt.Sprintf("rate_limit:%s:%s", action, key)
	return rdb.TTL(ctx, redisKey).Result()
}
