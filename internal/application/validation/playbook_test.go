package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/testutil"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func chinaTransformations() []rules.CulturalTransformationRule {
	return []rules.CulturalTransformationRule{
		{
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformText,
			Rule:               "Replace individual benefit claims with family benefit framing",
			Example: rules.TransformationExample{
				Before: "Take control of your health",
				After:  "Protect your family's health",
			},
			Priority: ctypes.PriorityHigh,
		},
		{
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformTone,
			Rule:               "Soften imperative calls to action",
			Priority:           ctypes.PriorityMedium,
		},
		{
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformVisual,
			Rule:               "Replace white backgrounds with warm tones",
			Priority:           ctypes.PriorityHigh,
		},
		{
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformStructure,
			Rule:               "Move institutional endorsements above the fold",
			EstimatedEffort:    "2 days",
			Priority:           ctypes.PriorityMedium,
		},
	}
}

func TestBuildPlaybookPartitionsByType(t *testing.T) {
	provider := rules.NewStaticGuidelineProvider()
	guidelines := provider.GetVisualGuidelines("China")
	profile, curated := provider.GetMarketProfile("China")
	require.True(t, curated)

	pb := BuildPlaybook("United States", "China", "banner", chinaTransformations(), guidelines, profile)

	// Text and tone rules land in the text bucket.
	require.Len(t, pb.TextTransformations, 2)
	assert.Equal(t, "Take control of your health → Protect your family's health", pb.TextTransformations[0].Example)
	assert.Empty(t, pb.TextTransformations[1].Example)

	require.Len(t, pb.StructuralChanges, 1)
	assert.Equal(t, "2 days", pb.StructuralChanges[0].EstimatedEffort)

	// Visual bucket carries the rule, the curated color avoidances with
	// reasoning, and the layout hierarchy note.
	assert.Contains(t, pb.VisualTransformations, "Replace white backgrounds with warm tones")
	assert.Contains(t, pb.VisualTransformations, "Avoid white in China: Associated with mourning and death")
	assert.Contains(t, pb.VisualTransformations, "Layout hierarchy: authority and institutional endorsement placed prominently")

	assert.Contains(t, pb.CulturalNotes, "Family involvement in healthcare decisions is crucial")
}

func TestBuildPlaybookUncuratedMarketFallsBack(t *testing.T) {
	provider := rules.NewStaticGuidelineProvider()
	guidelines := provider.GetVisualGuidelines("Atlantis")
	profile, curated := provider.GetMarketProfile("Atlantis")
	require.False(t, curated)

	pb := BuildPlaybook("Germany", "Atlantis", "email", nil, guidelines, profile)

	assert.Empty(t, pb.TextTransformations)
	assert.Contains(t, pb.CulturalNotes, rules.GenericCulturalNote)
}

func TestGenerateTransformationPlaybookService(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTransformationRulesFn: func(_ context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
			assert.Equal(t, "China", market)
			assert.Equal(t, "banner", assetType)
			return chinaTransformations(), nil
		},
	}
	svc := newTestService(repo)

	pb, err := svc.GenerateTransformationPlaybook(context.Background(), ctypes.ContentInput{Headline: "x"}, "banner", "United States", "China")
	require.NoError(t, err)

	assert.Equal(t, "United States", pb.SourceMarket)
	assert.Equal(t, "China", pb.TargetMarket)
	assert.Len(t, pb.TextTransformations, 2)
}

func TestBuildRecommendationsOrdering(t *testing.T) {
	issues := []ctypes.ValidationIssue{
		issueWith(ctypes.SeverityCritical),
		issueWith(ctypes.SeverityForbidden),
	}
	readiness := map[string]int{"Japan": 55, "China": 40, "Germany": 95}
	transformations := []rules.CulturalTransformationRule{
		transformWith(ctypes.PriorityCritical),
		transformWith(ctypes.PriorityLow),
	}

	recs := BuildRecommendations(issues, readiness, transformations)

	require.Len(t, recs, 5)
	assert.Contains(t, recs[0], "BLOCKING")
	assert.Contains(t, recs[1], "critical issue")
	// Low markets named alphabetically for stable output.
	assert.Contains(t, recs[2], "Market China scored 40")
	assert.Contains(t, recs[3], "Market Japan scored 55")
	assert.Contains(t, recs[4], "1 high-priority transformation")
}

func TestBuildRecommendationsCleanRun(t *testing.T) {
	recs := BuildRecommendations(nil, map[string]int{"Germany": 100}, nil)
	assert.Empty(t, recs)
}
