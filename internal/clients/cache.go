package clients

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finbridge/credit-engine/internal/models"
	"github.com/finbridge/credit-engine/pkg/logger"
)

// Cache key prefixes
const (
	loanCachePrefix    = "credit:loans:"
	profileCachePrefix = "credit:profile:"
)

// CachedLoanSource is a read-through redis cache over a LoanSource.
// Cache failures degrade to the underlying source; they never fail an
// analysis on their own.
type CachedLoanSource struct {
	source LoanSource
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCachedLoanSource wraps a LoanSource with a redis cache
func NewCachedLoanSource(source LoanSource, rdb *redis.Client, ttl time.Duration) *CachedLoanSource {
	return &CachedLoanSource{source: source, rdb: rdb, ttl: ttl}
}

var _ LoanSource = (*CachedLoanSource)(nil)

// GetLoans returns cached loans when fresh, fetching from the source otherwise
func (c *CachedLoanSource) GetLoans(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	key := loanCachePrefix + borrowerID

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var loans []models.Loan
		if err := json.Unmarshal([]byte(raw), &loans); err == nil {
			return loans, nil
		}
		logger.Warn("discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		logger.Warn("loan cache read failed", "key", key, "error", err)
	}

	loans, err := c.source.GetLoans(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(loans); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			logger.Warn("loan cache write failed", "key", key, "error", err)
		}
	}
	return loans, nil
}

// CachedProfileSource is a read-through redis cache over a ProfileSource.
// Only the by-id lookup is cached; document lookups and full listings go
// straight to the source.
type CachedProfileSource struct {
	source ProfileSource
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCachedProfileSource wraps a ProfileSource with a redis cache
func NewCachedProfileSource(source ProfileSource, rdb *redis.Client, ttl time.Duration) *CachedProfileSource {
	return &CachedProfileSource{source: source, rdb: rdb, ttl: ttl}
}

var _ ProfileSource = (*CachedProfileSource)(nil)

// GetProfile returns the cached profile when fresh, fetching otherwise
func (c *CachedProfileSource) GetProfile(ctx context.Context, borrowerID string) (*models.Profile, error) {
	key := profileCachePrefix + borrowerID

	if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
		var profile models.Profile
		if err := json.Unmarshal([]byte(raw), &profile); err == nil {
			return &profile, nil
		}
		logger.Warn("discarding corrupt cache entry", "key", key)
	} else if err != redis.Nil {
		logger.Warn("profile cache read failed", "key", key, "error", err)
	}

	profile, err := c.source.GetProfile(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(profile); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			logger.Warn("profile cache write failed", "key", key, "error", err)
		}
	}
	return profile, nil
}

// GetProfileByDocument delegates to the underlying source
func (c *CachedProfileSource) GetProfileByDocument(ctx context.Context, documentNumber string) (*models.Profile, error) {
	return c.source.GetProfileByDocument(ctx, documentNumber)
}

// ListProfiles delegates to the underlying source
func (c *CachedProfileSource) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return c.source.ListProfiles(ctx)
}
