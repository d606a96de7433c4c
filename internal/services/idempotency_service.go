package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-recipe-backend/internal/repo"
)

// DefaultIdempotencyTTL is used when IdempotencyService.TTL is not positive.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyService records completed creates keyed by (scope, key) so that
// client retries can be answered with the resource created the first time.
// Scope is the request path the key was presented on.
type IdempotencyService struct {
	DB  *gorm.DB
	TTL time.Duration
}

// NewIdempotencyService constructs an IdempotencyService.
func NewIdempotencyService(db *gorm.DB, ttl time.Duration) *IdempotencyService {
	return &IdempotencyService{DB: db, TTL: ttl}
}

// Exists reports whether a live record exists. Its signature matches
// middleware.IdempotencyLookup.
func (s *IdempotencyService) Exists(ctx context.Context, scope, key string, now time.Time) (bool, error) {
	_, ok, err := s.lookup(ctx, scope, key, now)
	return ok, err
}

// Lookup returns the resource id recorded for (scope, key), if any.
func (s *IdempotencyService) Lookup(ctx context.Context, scope, key string) (int64, bool, error) {
	return s.lookup(ctx, scope, key, time.Now().UTC())
}

func (s *IdempotencyService) lookup(ctx context.Context, scope, key string, now time.Time) (int64, bool, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rec.ResourceID, true, nil
}

// Remember stores resourceID under (scope, key). A concurrent request that
// already recorded the same pair wins; that case is not an error.
func (s *IdempotencyService) Remember(ctx context.Context, scope, key string, resourceID int64, status int) error {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	_, err := repo.CreateIdempotency(ctx, s.DB, scope, key, resourceID, status, ttl)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

// Purge removes expired records and returns how many were deleted.
func (s *IdempotencyService) Purge(ctx context.Context, now time.Time) (int64, error) {
	return repo.PurgeExpiredIdempotency(ctx, s.DB, now)
}
