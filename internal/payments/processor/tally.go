package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/p2p-kyc/verify-sub000/internal/clients/redis"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

// tallyTTL bounds staleness if an invalidation is lost.
const tallyTTL = 5 * time.Minute

// TallyStore is the database source of truth for the charged tally
type TallyStore interface {
	SumChargedAccounts(ctx context.Context, campaignID uuid.UUID) (int, error)
}

// TallyCache serves the charged-accounts tally for a campaign through a
// Redis read-through cache. The database stays the source of truth:
// every charge-mutating write invalidates the key.
type TallyCache struct {
	store  TallyStore
	cache  *redisclient.Client
	logger *observability.Logger
}

// NewTallyCache creates a new tally cache. A nil Redis client degrades
// to direct database reads.
func NewTallyCache(store TallyStore, cache *redisclient.Client, logger *observability.Logger) *TallyCache {
	return &TallyCache{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func tallyKey(campaignID uuid.UUID) string {
	return fmt.Sprintf("campaign:%s:charged_accounts", campaignID)
}

// ChargedAccounts returns the number of accounts covered by approved or
// paid charges on the campaign
func (t *TallyCache) ChargedAccounts(ctx context.Context, campaignID uuid.UUID) (int, error) {
	key := tallyKey(campaignID)

	if cached, err := t.cache.GetInt(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, redisclient.ErrCacheMiss) {
		t.logger.Warn(ctx, fmt.Sprintf("tally cache read failed, falling back to database: %v", err))
	}

	charged, err := t.store.SumChargedAccounts(ctx, campaignID)
	if err != nil {
		return 0, err
	}

	if err := t.cache.SetInt(ctx, key, charged, tallyTTL); err != nil {
		t.logger.Warn(ctx, fmt.Sprintf("tally cache write failed: %v", err))
	}
	return charged, nil
}

// Refresh recomputes the tally from the database and rewrites the
// cache entry. Used by the reconciliation worker.
func (t *TallyCache) Refresh(ctx context.Context, campaignID uuid.UUID) (int, error) {
	charged, err := t.store.SumChargedAccounts(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if err := t.cache.SetInt(ctx, tallyKey(campaignID), charged, tallyTTL); err != nil {
		t.logger.Warn(ctx, fmt.Sprintf("tally cache write failed: %v", err))
	}
	return charged, nil
}

// Invalidate drops the cached tally after a charge-mutating write
func (t *TallyCache) Invalidate(ctx context.Context, campaignID uuid.UUID) {
	if err := t.cache.Delete(ctx, tallyKey(campaignID)); err != nil {
		t.logger.Warn(ctx, fmt.Sprintf("tally cache invalidation failed: %v", err))
	}
}
