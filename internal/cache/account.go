package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key prefix and TTL for account balances.
const (
	balanceKeyPrefix = "account:balance:"

	// DefaultBalanceTTL is the TTL for cached balances. Entries are deleted
	// on every adjustment, so the TTL only bounds staleness after external
	// writes to the store.
	DefaultBalanceTTL = 5 * time.Minute
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// balanceKey builds the Redis key for an account's cached balance.
func balanceKey(accountID string) string {
	return balanceKeyPrefix + accountID
}

// GetBalance retrieves a cached balance for an account.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetBalance(ctx context.Context, accountID string) (float64, error) {
	result, err := c.client.Get(ctx, balanceKey(accountID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, fmt.Errorf("redis get failed: %w", err)
	}

	balance, err := strconv.ParseFloat(result, 64)
	if err != nil {
		// Corrupt entry, treat as a miss so it gets rewritten.
		return 0, ErrCacheMiss
	}

	return balance, nil
}

// SetBalance stores an account's balance in cache.
func (c *Cache) SetBalance(ctx context.Context, accountID string, balance float64) error {
	value := strconv.FormatFloat(balance, 'f', -1, 64)

	if err := c.client.Set(ctx, balanceKey(accountID), value, DefaultBalanceTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// DeleteBalance removes an account's cached balance.
// Called after every adjustment so the next read hits the store.
func (c *Cache) DeleteBalance(ctx context.Context, accountID string) error {
	if err := c.client.Del(ctx, balanceKey(accountID)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}

	return nil
}
