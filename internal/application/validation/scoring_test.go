package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func issueWith(severity ctypes.Severity) ctypes.ValidationIssue {
	return ctypes.ValidationIssue{
		Type:     ctypes.IssueTabooContent,
		Severity: severity,
		Market:   "China",
	}
}

func transformWith(priority ctypes.RulePriority) rules.CulturalTransformationRule {
	return rules.CulturalTransformationRule{Market: "China", Priority: priority}
}

func TestComputeMarketReadiness(t *testing.T) {
	tests := []struct {
		name            string
		issues          []ctypes.ValidationIssue
		transformations []rules.CulturalTransformationRule
		want            int
	}{
		{
			name: "no findings is a perfect score",
			want: 100,
		},
		{
			name:   "single warning deducts ten",
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityWarning)},
			want:   90,
		},
		{
			name:   "single critical deducts thirty",
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityCritical)},
			want:   70,
		},
		{
			name:   "single forbidden deducts fifty",
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityForbidden)},
			want:   50,
		},
		{
			name: "transformation priorities stack",
			transformations: []rules.CulturalTransformationRule{
				transformWith(ctypes.PriorityCritical),
				transformWith(ctypes.PriorityHigh),
				transformWith(ctypes.PriorityMedium),
				transformWith(ctypes.PriorityLow),
			},
			want: 50,
		},
		{
			name: "heavy deductions clamp at zero",
			issues: []ctypes.ValidationIssue{
				issueWith(ctypes.SeverityForbidden),
				issueWith(ctypes.SeverityForbidden),
				issueWith(ctypes.SeverityCritical),
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMarketReadiness(tt.issues, tt.transformations)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestComputeMarketReadinessOrderIndependent(t *testing.T) {
	forward := []ctypes.ValidationIssue{
		issueWith(ctypes.SeverityForbidden),
		issueWith(ctypes.SeverityWarning),
		issueWith(ctypes.SeverityCritical),
	}
	reversed := []ctypes.ValidationIssue{forward[2], forward[1], forward[0]}

	assert.Equal(t,
		ComputeMarketReadiness(forward, nil),
		ComputeMarketReadiness(reversed, nil))
}

func TestComputeOverallScore(t *testing.T) {
	tests := []struct {
		name      string
		readiness map[string]int
		issues    []ctypes.ValidationIssue
		want      int
	}{
		{
			name: "no markets evaluated means perfect",
			want: 100,
		},
		{
			name:      "single market passes through",
			readiness: map[string]int{"China": 90},
			want:      90,
		},
		{
			name:      "mean of markets rounds",
			readiness: map[string]int{"China": 90, "Japan": 85},
			want:      88,
		},
		{
			name:      "critical issue clamps aggregate to sixty",
			readiness: map[string]int{"China": 70, "Japan": 100, "Germany": 100},
			issues:    []ctypes.ValidationIssue{issueWith(ctypes.SeverityCritical)},
			want:      60,
		},
		{
			name:      "forbidden issue clamps aggregate to sixty",
			readiness: map[string]int{"China": 100, "Japan": 100},
			issues:    []ctypes.ValidationIssue{issueWith(ctypes.SeverityForbidden)},
			want:      60,
		},
		{
			name:      "clamp does not raise a lower mean",
			readiness: map[string]int{"China": 20},
			issues:    []ctypes.ValidationIssue{issueWith(ctypes.SeverityForbidden)},
			want:      20,
		},
		{
			name:      "warnings never trigger the clamp",
			readiness: map[string]int{"China": 90, "Japan": 90},
			issues:    []ctypes.ValidationIssue{issueWith(ctypes.SeverityWarning)},
			want:      90,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOverallScore(tt.readiness, tt.issues))
		})
	}
}

func TestDeriveRiskLevel(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		issues []ctypes.ValidationIssue
		want   ctypes.RiskLevel
	}{
		{
			name:   "forbidden forces critical regardless of score",
			score:  100,
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityForbidden)},
			want:   ctypes.RiskCritical,
		},
		{
			name:   "critical issue forces high",
			score:  95,
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityCritical)},
			want:   ctypes.RiskHigh,
		},
		{
			name:  "score below fifty is high",
			score: 49,
			want:  ctypes.RiskHigh,
		},
		{
			name:  "score below seventy is medium",
			score: 69,
			want:  ctypes.RiskMedium,
		},
		{
			name:  "clean high score is low",
			score: 90,
			want:  ctypes.RiskLow,
		},
		{
			name:   "warnings do not raise risk on their own",
			score:  90,
			issues: []ctypes.ValidationIssue{issueWith(ctypes.SeverityWarning)},
			want:   ctypes.RiskLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveRiskLevel(tt.score, tt.issues))
		})
	}
}
