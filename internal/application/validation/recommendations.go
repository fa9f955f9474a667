package validation

import (
	"fmt"
	"sort"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// marketReadinessThreshold is the readiness score below which a market is
// called out by name in the recommendations.
const marketReadinessThreshold = 70

// BuildRecommendations converts the aggregated run state into advisory
// text, in fixed priority order: forbidden blockers first, then critical
// review, then under-threshold markets by name, then the count of
// critical/high-priority transformations.  The engine never mutates
// content; recommendations are guidance only.
func BuildRecommendations(
	issues []ctypes.ValidationIssue,
	marketReadiness map[string]int,
	transformations []rules.CulturalTransformationRule,
) []string {
	recs := []string{}

	forbidden, critical := 0, 0
	for _, issue := range issues {
		switch issue.Severity {
		case ctypes.SeverityForbidden:
			forbidden++
		case ctypes.SeverityCritical:
			critical++
		}
	}
	if forbidden > 0 {
		recs = append(recs, fmt.Sprintf(
			"BLOCKING: address %d forbidden element(s) before this content can be released", forbidden))
	}
	if critical > 0 {
		recs = append(recs, fmt.Sprintf(
			"Schedule cultural review: %d critical issue(s) require sign-off", critical))
	}

	// Deterministic market ordering for stable output.
	lowMarkets := make([]string, 0, len(marketReadiness))
	for market, score := range marketReadiness {
		if score < marketReadinessThreshold {
			lowMarkets = append(lowMarkets, market)
		}
	}
	sort.Strings(lowMarkets)
	for _, market := range lowMarkets {
		recs = append(recs, fmt.Sprintf(
			"Market %s scored %d and needs adaptation before launch", market, marketReadiness[market]))
	}

	urgent := 0
	for _, rule := range transformations {
		if rule.Priority == ctypes.PriorityCritical || rule.Priority == ctypes.PriorityHigh {
			urgent++
		}
	}
	if urgent > 0 {
		recs = append(recs, fmt.Sprintf(
			"Apply %d high-priority transformation(s) from the playbook", urgent))
	}

	return recs
}
