package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
)

// Cache key layout.  Rule data changes rarely; fifteen minutes keeps the
// scoring path off the database without making rule edits invisible.
const (
	tabooKeyFmt     = "rules:taboo:%s"
	transformKeyFmt = "rules:transform:%s:%s"
	termsKeyFmt     = "terms:%s:%s"

	DefaultRuleTTL = 15 * time.Minute
)

// CachedRuleRepository is a read-through cache in front of a
// rules.Repository.  Cache failures fall through to the inner repository.
type CachedRuleRepository struct {
	inner  rules.Repository
	cache  Cache
	ttl    time.Duration
	logger logging.Logger
}

// NewCachedRuleRepository wraps inner with the read-through cache.  A
// non-positive ttl selects DefaultRuleTTL.
func NewCachedRuleRepository(inner rules.Repository, cache Cache, ttl time.Duration, log logging.Logger) *CachedRuleRepository {
	if ttl <= 0 {
		ttl = DefaultRuleTTL
	}
	return &CachedRuleRepository{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: log.Named("rule-cache"),
	}
}

// GetTabooRules implements rules.Repository.
func (r *CachedRuleRepository) GetTabooRules(ctx context.Context, market string) ([]rules.TabooContentRule, error) {
	key := fmt.Sprintf(tabooKeyFmt, market)
	var cached []rules.TabooContentRule
	err := r.cache.GetOrSet(ctx, key, &cached, r.ttl, func(ctx context.Context) (interface{}, error) {
		return r.inner.GetTabooRules(ctx, market)
	})
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// GetTransformationRules implements rules.Repository.
func (r *CachedRuleRepository) GetTransformationRules(ctx context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
	key := fmt.Sprintf(transformKeyFmt, market, assetType)
	var cached []rules.CulturalTransformationRule
	err := r.cache.GetOrSet(ctx, key, &cached, r.ttl, func(ctx context.Context) (interface{}, error) {
		return r.inner.GetTransformationRules(ctx, market, assetType)
	})
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// InvalidateMarket drops the cached taboo and transformation rules for a
// market after rule edits.
func (r *CachedRuleRepository) InvalidateMarket(ctx context.Context, market string) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf(tabooKeyFmt, market)); err != nil {
		return err
	}
	_, err := r.cache.DeleteByPrefix(ctx, fmt.Sprintf("rules:transform:%s:", market))
	return err
}

// CachedTerminologyRepository is the read-through cache in front of a
// terminology.Repository.
type CachedTerminologyRepository struct {
	inner  terminology.Repository
	cache  Cache
	ttl    time.Duration
	logger logging.Logger
}

// NewCachedTerminologyRepository wraps inner with the read-through cache.
func NewCachedTerminologyRepository(inner terminology.Repository, cache Cache, ttl time.Duration, log logging.Logger) *CachedTerminologyRepository {
	if ttl <= 0 {
		ttl = DefaultRuleTTL
	}
	return &CachedTerminologyRepository{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: log.Named("terms-cache"),
	}
}

// GetEntries implements terminology.Repository.
func (r *CachedTerminologyRepository) GetEntries(ctx context.Context, brandID, therapeuticArea string) ([]terminology.Entry, error) {
	key := fmt.Sprintf(termsKeyFmt, brandID, therapeuticArea)
	var cached []terminology.Entry
	err := r.cache.GetOrSet(ctx, key, &cached, r.ttl, func(ctx context.Context) (interface{}, error) {
		return r.inner.GetEntries(ctx, brandID, therapeuticArea)
	})
	if err != nil {
		return nil, err
	}
	return cached, nil
}

// InvalidateBrand drops all cached vocabularies for a brand.
func (r *CachedTerminologyRepository) InvalidateBrand(ctx context.Context, brandID string) error {
	_, err := r.cache.DeleteByPrefix(ctx, fmt.Sprintf("terms:%s:", brandID))
	return err
}
