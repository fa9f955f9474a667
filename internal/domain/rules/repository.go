package rules

import (
	"context"
)

// Repository is the rule-store lookup contract consumed by the validation
// engine.  Implementations must treat "no rules for this market" as a
// successful empty result, never an error: an empty collection means "no
// constraints for this market".  Errors are reserved for transport or
// storage failures, which callers surface rather than defaulting.
type Repository interface {
	// GetTabooRules returns all taboo content rules for a market.
	GetTabooRules(ctx context.Context, market string) ([]TabooContentRule, error)

	// GetTransformationRules returns all transformation rules for a
	// market/asset-type pair.
	GetTransformationRules(ctx context.Context, market, assetType string) ([]CulturalTransformationRule, error)
}

// GuidelineProvider serves curated per-market visual guidance and profile
// data.  Providers fall back to generic defaults for unknown markets; they
// never fail on "market not curated".
type GuidelineProvider interface {
	// GetVisualGuidelines returns visual adaptation guidance for a market.
	GetVisualGuidelines(market string) VisualCulturalGuidelines

	// GetMarketProfile returns the curated profile for a market, or
	// (profile, false) with a generic fallback when none is curated.
	GetMarketProfile(market string) (MarketProfile, bool)
}
