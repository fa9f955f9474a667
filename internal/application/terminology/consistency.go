package terminology

import (
	"context"
	"fmt"

	domain "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
)

// marketLanguages maps markets to the translation-memory target language
// used by the consistency cross-check.  Markets absent here are skipped.
var marketLanguages = map[string]string{
	"China":         "zh",
	"Japan":         "ja",
	"Germany":       "de",
	"Brazil":        "pt",
	"Saudi Arabia":  "ar",
	"France":        "fr",
	"Spain":         "es",
	"United States": "en",
}

const defaultMinMatchPercentage = 85.0

// ConsistencyChecker cross-checks preferred terms against the translation
// memory: a term with no high-confidence TM match for a target market's
// language has likely never been through localized review.
type ConsistencyChecker struct {
	tm         domain.TranslationMemory
	sourceLang string
	minMatch   float64
	logger     logging.Logger
}

// NewConsistencyChecker wires the cross-check.  A nil TranslationMemory
// disables it; Check then returns no warnings.
func NewConsistencyChecker(tm domain.TranslationMemory, logger logging.Logger) *ConsistencyChecker {
	return &ConsistencyChecker{
		tm:         tm,
		sourceLang: "en",
		minMatch:   defaultMinMatchPercentage,
		logger:     logger.Named("tm-consistency"),
	}
}

// Enabled reports whether a translation memory is configured.
func (c *ConsistencyChecker) Enabled() bool { return c.tm != nil }

// Check returns one warning per (term, market) pair lacking a
// high-confidence TM match.  TM transport failures skip the affected
// market rather than failing the analysis.
func (c *ConsistencyChecker) Check(ctx context.Context, brandID string, preferredTerms []string, targetMarkets []string) []string {
	if c.tm == nil {
		return nil
	}
	warnings := []string{}
	for _, market := range targetMarkets {
		lang, ok := marketLanguages[market]
		if !ok || lang == c.sourceLang {
			continue
		}
		for _, term := range preferredTerms {
			matches, err := c.tm.Search(ctx, domain.TranslationMemorySearch{
				Term:               term,
				SourceLang:         c.sourceLang,
				TargetLang:         lang,
				BrandID:            brandID,
				MinMatchPercentage: c.minMatch,
			})
			if err != nil {
				c.logger.Warn("translation memory lookup failed",
					logging.String("market", market),
					logging.String("term", term),
					logging.Err(err))
				break
			}
			if len(matches) == 0 {
				warnings = append(warnings, fmt.Sprintf(
					"No reviewed %s translation found for %q; schedule localization review for %s",
					lang, term, market))
			}
		}
	}
	return warnings
}
