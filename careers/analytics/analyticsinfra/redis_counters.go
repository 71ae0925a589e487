package analyticsinfra

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics"
	"github.com/Abraxas-365/careers/pkg/kernel"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/blake2b"
)

// counterTTL keeps a day's counters around long enough for the last flush
const counterTTL = 72 * time.Hour

// RedisCounterStore implements analytics.CounterStore using Redis
type RedisCounterStore struct {
	client *redis.Client
	prefix string
}

// NewRedisCounterStore creates a new Redis-backed counter store
func NewRedisCounterStore(client *redis.Client, prefix string) *RedisCounterStore {
	if prefix == "" {
		prefix = "analytics"
	}
	return &RedisCounterStore{
		client: client,
		prefix: prefix,
	}
}

// IncrPageView counts a page view and adds the visitor to the day's HyperLogLog
func (s *RedisCounterStore) IncrPageView(ctx context.Context, companyID kernel.CompanyID, day time.Time, visitor string) error {
	k := s.keys(companyID, day)

	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, k.pageViews)
	pipe.Expire(ctx, k.pageViews, counterTTL)
	if visitor != "" {
		pipe.PFAdd(ctx, k.visitors, visitorDigest(visitor))
		pipe.Expire(ctx, k.visitors, counterTTL)
	}
	s.markDirty(ctx, pipe, companyID, day)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr page view for company %s: %w", companyID, err)
	}
	return nil
}

// IncrJobView counts a job detail view
func (s *RedisCounterStore) IncrJobView(ctx context.Context, companyID kernel.CompanyID, day time.Time, jobID kernel.JobID) error {
	k := s.keys(companyID, day)

	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, k.jobViews, jobID.String(), 1)
	pipe.Expire(ctx, k.jobViews, counterTTL)
	s.markDirty(ctx, pipe, companyID, day)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr job view for job %s: %w", jobID, err)
	}
	return nil
}

// IncrApplicationClick counts a submitted application
func (s *RedisCounterStore) IncrApplicationClick(ctx context.Context, companyID kernel.CompanyID, day time.Time) error {
	k := s.keys(companyID, day)

	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, k.applications)
	pipe.Expire(ctx, k.applications, counterTTL)
	s.markDirty(ctx, pipe, companyID, day)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr application click for company %s: %w", companyID, err)
	}
	return nil
}

// DirtyCompanies lists companies with counters on day
func (s *RedisCounterStore) DirtyCompanies(ctx context.Context, day time.Time) ([]kernel.CompanyID, error) {
	members, err := s.client.SMembers(ctx, s.dirtyKey(day)).Result()
	if err != nil {
		return nil, fmt.Errorf("list dirty companies: %w", err)
	}

	ids := make([]kernel.CompanyID, 0, len(members))
	for _, m := range members {
		ids = append(ids, kernel.CompanyID(m))
	}
	return ids, nil
}

// Snapshot reads the current counters of a company for day
func (s *RedisCounterStore) Snapshot(ctx context.Context, companyID kernel.CompanyID, day time.Time) (analytics.DailyStats, error) {
	k := s.keys(companyID, day)
	stats := analytics.NewDailyStats(companyID, day)

	pipe := s.client.Pipeline()
	pageViews := pipe.Get(ctx, k.pageViews)
	visitors := pipe.PFCount(ctx, k.visitors)
	jobViews := pipe.HGetAll(ctx, k.jobViews)
	applications := pipe.Get(ctx, k.applications)

	// A missing key surfaces as redis.Nil on Exec
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return stats, fmt.Errorf("snapshot counters for company %s: %w", companyID, err)
	}

	var err error
	if stats.PageViews, err = int64OrZero(pageViews); err != nil {
		return stats, err
	}
	if stats.ApplicationClicks, err = int64OrZero(applications); err != nil {
		return stats, err
	}
	stats.UniqueVisitors = visitors.Val()

	for id, raw := range jobViews.Val() {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return stats, fmt.Errorf("parse job views for %s: %w", id, err)
		}
		stats.JobViews[kernel.JobID(id)] = n
	}

	return stats, nil
}

// Ping checks if Redis connection is alive
func (s *RedisCounterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// ============================================================================
// Helper Methods
// ============================================================================

type counterKeys struct {
	pageViews    string
	visitors     string
	jobViews     string
	applications string
}

func (s *RedisCounterStore) keys(companyID kernel.CompanyID, day time.Time) counterKeys {
	base := fmt.Sprintf("%s:%s:%s", s.prefix, analytics.Day(day), companyID)
	return counterKeys{
		pageViews:    base + ":pv",
		visitors:     base + ":uv",
		jobViews:     base + ":jobs",
		applications: base + ":apply",
	}
}

func (s *RedisCounterStore) dirtyKey(day time.Time) string {
	return fmt.Sprintf("%s:%s:dirty", s.prefix, analytics.Day(day))
}

func (s *RedisCounterStore) markDirty(ctx context.Context, pipe redis.Pipeliner, companyID kernel.CompanyID, day time.Time) {
	key := s.dirtyKey(day)
	pipe.SAdd(ctx, key, companyID.String())
	pipe.Expire(ctx, key, counterTTL)
}

func int64OrZero(cmd *redis.StringCmd) (int64, error) {
	n, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter %s: %w", cmd.Args()[1], err)
	}
	return n, nil
}

// visitorDigest keeps raw visitor ids and cookies out of Redis
func visitorDigest(visitor string) string {
	sum := blake2b.Sum256([]byte(visitor))
	return hex.EncodeToString(sum[:16])
}
