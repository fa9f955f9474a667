package validation

import (
	"math"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ─────────────────────────────────────────────────────────────────────────────
// Penalty tables
// ─────────────────────────────────────────────────────────────────────────────

// severityPenalty is the per-issue deduction applied to a market's readiness
// score.
var severityPenalty = map[ctypes.Severity]int{
	ctypes.SeverityForbidden: 50,
	ctypes.SeverityCritical:  30,
	ctypes.SeverityWarning:   10,
}

// priorityPenalty is the per-rule deduction for each transformation rule a
// market/asset-type pair requires.
var priorityPenalty = map[ctypes.RulePriority]int{
	ctypes.PriorityCritical: 20,
	ctypes.PriorityHigh:     15,
	ctypes.PriorityMedium:   10,
	ctypes.PriorityLow:      5,
}

// scoreClampOnSevereIssue caps the overall score whenever any forbidden or
// critical issue exists, regardless of how well other markets scored.
const scoreClampOnSevereIssue = 60

// ─────────────────────────────────────────────────────────────────────────────
// Scoring
// ─────────────────────────────────────────────────────────────────────────────

// ComputeMarketReadiness returns the readiness score for one market: 100
// minus the severity penalty of each issue found for that market, minus the
// priority penalty of each applicable transformation rule, clamped to
// [0,100].  Deductions are order independent.
func ComputeMarketReadiness(issues []ctypes.ValidationIssue, transformations []rules.CulturalTransformationRule) int {
	score := 100
	for _, issue := range issues {
		score -= severityPenalty[issue.Severity]
	}
	for _, rule := range transformations {
		score -= priorityPenalty[rule.Priority]
	}
	return ctypes.ClampScore(score)
}

// ComputeOverallScore aggregates per-market readiness into one score: the
// arithmetic mean rounded half away from zero, then clamped to at most 60
// when any forbidden or critical issue exists anywhere.  No markets scored
// means a perfect score.
func ComputeOverallScore(marketReadiness map[string]int, issues []ctypes.ValidationIssue) int {
	score := 100
	if len(marketReadiness) > 0 {
		sum := 0
		for _, s := range marketReadiness {
			sum += s
		}
		score = int(math.Round(float64(sum) / float64(len(marketReadiness))))
	}
	if hasSevereIssue(issues) && score > scoreClampOnSevereIssue {
		score = scoreClampOnSevereIssue
	}
	return ctypes.ClampScore(score)
}

// DeriveRiskLevel classifies the run.  Any forbidden issue is critical risk;
// a critical issue or an overall score below 50 is high; below 70 is medium;
// otherwise low.
func DeriveRiskLevel(overallScore int, issues []ctypes.ValidationIssue) ctypes.RiskLevel {
	hasCritical := false
	for _, issue := range issues {
		switch issue.Severity {
		case ctypes.SeverityForbidden:
			return ctypes.RiskCritical
		case ctypes.SeverityCritical:
			hasCritical = true
		}
	}
	if hasCritical || overallScore < 50 {
		return ctypes.RiskHigh
	}
	if overallScore < 70 {
		return ctypes.RiskMedium
	}
	return ctypes.RiskLow
}

func hasSevereIssue(issues []ctypes.ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == ctypes.SeverityForbidden || issue.Severity == ctypes.SeverityCritical {
			return true
		}
	}
	return false
}
