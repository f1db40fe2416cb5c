package clients

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/finbridge/credit-engine/internal/models"
)

type countingLoanSource struct {
	calls atomic.Int32
	loans []models.Loan
	err   error
}

func (s *countingLoanSource) GetLoans(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	s.calls.Add(1)
	return s.loans, s.err
}

type countingProfileSource struct {
	calls   atomic.Int32
	profile *models.Profile
}

func (s *countingProfileSource) GetProfile(ctx context.Context, borrowerID string) (*models.Profile, error) {
	s.calls.Add(1)
	return s.profile, nil
}

func (s *countingProfileSource) GetProfileByDocument(ctx context.Context, documentNumber string) (*models.Profile, error) {
	s.calls.Add(1)
	return s.profile, nil
}

func (s *countingProfileSource) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	s.calls.Add(1)
	return nil, nil
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCachedLoanSource_ReadThrough(t *testing.T) {
	_, rdb := newTestRedis(t)
	source := &countingLoanSource{loans: []models.Loan{{ID: "loan-1", RemainingBalance: 900}}}
	cached := NewCachedLoanSource(source, rdb, time.Minute)

	first, err := cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, int32(1), source.calls.Load())

	second, err := cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	// Served from cache, no second fetch
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCachedLoanSource_EntryExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	source := &countingLoanSource{loans: []models.Loan{{ID: "loan-1"}}}
	cached := NewCachedLoanSource(source, rdb, time.Minute)

	_, err := cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestCachedLoanSource_SourceErrorIsNotCached(t *testing.T) {
	_, rdb := newTestRedis(t)
	source := &countingLoanSource{err: ErrSourceUnavailable}
	cached := NewCachedLoanSource(source, rdb, time.Minute)

	loans, err := cached.GetLoans(context.Background(), "user-1")
	assert.Nil(t, loans)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	source.err = nil
	source.loans = []models.Loan{{ID: "loan-1"}}
	loans, err = cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
}

// Cache outages degrade to the underlying source instead of failing the
// analysis.
func TestCachedLoanSource_FailsOpenWhenRedisIsDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Close()

	source := &countingLoanSource{loans: []models.Loan{{ID: "loan-1"}}}
	cached := NewCachedLoanSource(source, rdb, time.Minute)

	loans, err := cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCachedLoanSource_CorruptEntryIsDiscarded(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mr.Set(loanCachePrefix+"user-1", "{{{")

	source := &countingLoanSource{loans: []models.Loan{{ID: "loan-1"}}}
	cached := NewCachedLoanSource(source, rdb, time.Minute)

	loans, err := cached.GetLoans(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCachedProfileSource_ReadThrough(t *testing.T) {
	_, rdb := newTestRedis(t)
	source := &countingProfileSource{profile: &models.Profile{UserID: "user-1", MonthlyIncome: 1500}}
	cached := NewCachedProfileSource(source, rdb, time.Minute)

	first, err := cached.GetProfile(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 1500.0, first.MonthlyIncome)

	second, err := cached.GetProfile(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), source.calls.Load())
}

func TestCachedProfileSource_DocumentLookupBypassesCache(t *testing.T) {
	_, rdb := newTestRedis(t)
	source := &countingProfileSource{profile: &models.Profile{UserID: "user-1"}}
	cached := NewCachedProfileSource(source, rdb, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := cached.GetProfileByDocument(context.Background(), "0801-1985-00123")
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(2), source.calls.Load())
}
