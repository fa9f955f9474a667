package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/testutil"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

func newTestService(repo rules.Repository) *Service {
	return NewService(repo, rules.NewStaticGuidelineProvider(), nil, nil, logging.NewNopLogger())
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	svc := newTestService(&testutil.RuleRepoMock{})

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.ValidateCulturalAppropriateness(context.Background(), ctypes.ContentInput{}, "banner", []string{"China"})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeContentEmpty))
	})

	t.Run("no target markets", func(t *testing.T) {
		content := ctypes.ContentInput{Headline: "hello"}
		_, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", nil)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeNoTargetMarkets))
	})
}

func TestValidateChinaWhiteColorScenario(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			require.Equal(t, "China", market)
			return []rules.TabooContentRule{whiteColorRule()}, nil
		},
	}
	svc := newTestService(repo)

	content := ctypes.ContentInput{
		Headline:      "Limited time offer",
		BrandElements: ctypes.BrandElements{Colors: []string{"white"}},
	}

	result, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", []string{"China"})
	require.NoError(t, err)

	assert.Equal(t, 90, result.MarketReadiness["China"])
	assert.Equal(t, 90, result.OverallScore)
	assert.Equal(t, ctypes.RiskLow, result.RiskLevel)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, ctypes.IssueVisualConcern, result.Issues[0].Type)
}

func TestValidateSevereIssueClampsAggregate(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			if market != "China" {
				return []rules.TabooContentRule{}, nil
			}
			return []rules.TabooContentRule{{
				Market:   "China",
				Category: ctypes.CategoryText,
				Element:  "death",
				Severity: ctypes.SeverityForbidden,
				Reason:   "Death references are prohibited in health marketing",
			}}, nil
		},
	}
	svc := newTestService(repo)

	content := ctypes.ContentInput{Body: "Beat death with our product"}
	markets := []string{"China", "Japan", "Germany", "United States", "Brazil"}

	result, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", markets)
	require.NoError(t, err)

	// Four clean markets cannot average away one forbidden finding.
	assert.Equal(t, 60, result.OverallScore)
	assert.Equal(t, ctypes.RiskCritical, result.RiskLevel)
	assert.Equal(t, 50, result.MarketReadiness["China"])
	assert.Equal(t, 100, result.MarketReadiness["Japan"])
	require.NotEmpty(t, result.Recommendations)
	assert.Contains(t, result.Recommendations[0], "BLOCKING")
}

func TestValidateOrderIndependence(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			if market == "Japan" {
				return []rules.TabooContentRule{{
					Market:   "Japan",
					Category: ctypes.CategoryText,
					Element:  "four",
					Severity: ctypes.SeverityCritical,
					Reason:   "Number four connotes death",
				}}, nil
			}
			return []rules.TabooContentRule{}, nil
		},
	}
	svc := newTestService(repo)
	content := ctypes.ContentInput{Body: "Take four tablets daily"}

	forward, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", []string{"Japan", "Germany", "Brazil"})
	require.NoError(t, err)
	reversed, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", []string{"Brazil", "Germany", "Japan"})
	require.NoError(t, err)

	assert.Equal(t, forward.OverallScore, reversed.OverallScore)
	assert.Equal(t, forward.RiskLevel, reversed.RiskLevel)
	assert.Equal(t, forward.MarketReadiness, reversed.MarketReadiness)
}

func TestValidatePartialMarketFailureDegrades(t *testing.T) {
	repoErr := errors.New(errors.ErrCodeRuleStoreUnavailable, "store down")
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(_ context.Context, market string) ([]rules.TabooContentRule, error) {
			if market == "Japan" {
				return nil, repoErr
			}
			return []rules.TabooContentRule{}, nil
		},
	}
	svc := newTestService(repo)
	content := ctypes.ContentInput{Headline: "Ask your doctor"}

	result, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", []string{"Japan", "Germany"})
	require.NoError(t, err)

	_, evaluated := result.MarketReadiness["Japan"]
	assert.False(t, evaluated)
	assert.Equal(t, 100, result.MarketReadiness["Germany"])

	found := false
	for _, rec := range result.Recommendations {
		if rec == "Market Japan could not be evaluated; rerun validation before launch" {
			found = true
		}
	}
	assert.True(t, found, "expected degradation recommendation, got %v", result.Recommendations)
}

func TestValidateAllMarketsFailed(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTabooRulesFn: func(context.Context, string) ([]rules.TabooContentRule, error) {
			return nil, errors.New(errors.ErrCodeRuleStoreUnavailable, "store down")
		},
	}
	svc := newTestService(repo)
	content := ctypes.ContentInput{Headline: "Ask your doctor"}

	_, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "banner", []string{"Japan", "Germany"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAllMarketsFailed))
}

func TestValidateTransformationRulesDeductReadiness(t *testing.T) {
	repo := &testutil.RuleRepoMock{
		GetTransformationRulesFn: func(_ context.Context, market, assetType string) ([]rules.CulturalTransformationRule, error) {
			assert.Equal(t, "email", assetType)
			return []rules.CulturalTransformationRule{
				{Market: market, AssetType: assetType, TransformationType: ctypes.TransformText, Priority: ctypes.PriorityHigh},
				{Market: market, AssetType: assetType, TransformationType: ctypes.TransformVisual, Priority: ctypes.PriorityLow},
			}, nil
		},
	}
	svc := newTestService(repo)
	content := ctypes.ContentInput{Headline: "Ask your doctor"}

	result, err := svc.ValidateCulturalAppropriateness(context.Background(), content, "email", []string{"Germany"})
	require.NoError(t, err)

	assert.Equal(t, 80, result.MarketReadiness["Germany"])
	assert.Len(t, result.TransformationRules, 2)
	// One high-priority transformation surfaces in the recommendations.
	assert.Contains(t, result.Recommendations[len(result.Recommendations)-1], "high-priority transformation")
}
