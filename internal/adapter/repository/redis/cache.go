package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/chisomo/hospledger/internal/infrastructure/metrics"
)

const genKey = "balance:gen"

// BalanceCache implements usecase.BalanceCache using Redis.
//
// Cached values are keyed by (generation, account, asOfDate). Invalidation
// bumps the generation counter, which orphans every key written under the
// old generation in one O(1) operation; orphans expire via TTL. Get reports
// the generation it read under, and Set writes under that same generation,
// so a write-back racing with an invalidation lands on the old generation
// and is never served to readers.
type BalanceCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewBalanceCache creates a new BalanceCache. metrics may be nil.
func NewBalanceCache(client *redis.Client, ttl time.Duration, m *metrics.Metrics) *BalanceCache {
	return &BalanceCache{
		client:  client,
		ttl:     ttl,
		metrics: m,
	}
}

// Get retrieves a cached balance. It also returns the generation the lookup
// observed; callers pass it back to Set so a miss-then-recompute cannot
// overwrite an invalidation that happened in between.
func (c *BalanceCache) Get(ctx context.Context, accountCode string, asOf time.Time) (decimal.Decimal, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return decimal.Zero, 0, false, err
	}

	val, err := c.client.Get(ctx, c.key(gen, accountCode, asOf)).Result()
	if err == redis.Nil {
		c.countMiss()
		return decimal.Zero, gen, false, nil
	}
	if err != nil {
		return decimal.Zero, gen, false, err
	}

	balance, err := decimal.NewFromString(val)
	if err != nil {
		// Unparseable payload is treated as a miss; the caller recomputes.
		c.countMiss()
		return decimal.Zero, gen, false, nil
	}

	c.countHit()

	return balance, gen, true, nil
}

// Set stores a derived balance under gen, the generation observed by the Get
// that missed. If Invalidate ran in between, the write lands under the old
// generation and is unreachable.
func (c *BalanceCache) Set(ctx context.Context, accountCode string, asOf time.Time, balance decimal.Decimal, gen int64) error {
	return c.client.Set(ctx, c.key(gen, accountCode, asOf), balance.String(), c.ttl).Err()
}

// Invalidate discards all cached balances by bumping the generation.
func (c *BalanceCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, genKey).Err()
}

func (c *BalanceCache) generation(ctx context.Context) (int64, error) {
	val, err := c.client.Get(ctx, genKey).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	gen, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cache generation %q: %w", val, err)
	}

	return gen, nil
}

func (c *BalanceCache) key(gen int64, accountCode string, asOf time.Time) string {
	return fmt.Sprintf("balance:%d:%s:%s", gen, accountCode, asOf.Format("2006-01-02"))
}

func (c *BalanceCache) countHit() {
	if c.metrics != nil {
		c.metrics.BalanceCacheHits.Inc()
	}
}

func (c *BalanceCache) countMiss() {
	if c.metrics != nil {
		c.metrics.BalanceCacheMisses.Inc()
	}
}
