package validation

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ─────────────────────────────────────────────────────────────────────────────
// Result and collaborator contracts
// ─────────────────────────────────────────────────────────────────────────────

// CulturalValidationResult is the top-level output of a full validation run.
type CulturalValidationResult struct {
	OverallScore        int                                `json:"overall_score"`
	RiskLevel           ctypes.RiskLevel                   `json:"risk_level"`
	Issues              []ctypes.ValidationIssue           `json:"issues"`
	TransformationRules []rules.CulturalTransformationRule `json:"transformation_rules"`
	MarketReadiness     map[string]int                     `json:"market_readiness"`
	Recommendations     []string                           `json:"recommendations"`
}

// EventPublisher emits the post-validation event.  Publishing is
// fire-and-forget; a publish failure is logged and never fails the run.
type EventPublisher interface {
	PublishContentValidated(ctx context.Context, contentID string, markets []string, overallScore int, riskLevel ctypes.RiskLevel) error
}

// MetricsRecorder receives engine observability signals.
type MetricsRecorder interface {
	ObserveValidation(duration time.Duration, riskLevel ctypes.RiskLevel, overallScore int)
	CountIssue(severity ctypes.Severity)
	ObserveRealtime(duration time.Duration)
}

// NopPublisher discards events.  Used by the CLI and in tests.
type NopPublisher struct{}

func (NopPublisher) PublishContentValidated(context.Context, string, []string, int, ctypes.RiskLevel) error {
	return nil
}

// NopMetrics discards observability signals.
type NopMetrics struct{}

func (NopMetrics) ObserveValidation(time.Duration, ctypes.RiskLevel, int) {}
func (NopMetrics) CountIssue(ctypes.Severity)                            {}
func (NopMetrics) ObserveRealtime(time.Duration)                         {}

// ─────────────────────────────────────────────────────────────────────────────
// Service
// ─────────────────────────────────────────────────────────────────────────────

// Service orchestrates the validation pipeline: rule lookup, taboo
// matching, scoring, risk derivation, and recommendation generation.  It
// owns no mutable state; every run is a function of its arguments and the
// repository contents.
type Service struct {
	ruleRepo   rules.Repository
	guidelines rules.GuidelineProvider
	publisher  EventPublisher
	metrics    MetricsRecorder
	logger     logging.Logger
}

// NewService wires the validation service.  publisher and metrics may be
// the Nop implementations for offline use.
func NewService(
	ruleRepo rules.Repository,
	guidelines rules.GuidelineProvider,
	publisher EventPublisher,
	metrics MetricsRecorder,
	logger logging.Logger,
) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Service{
		ruleRepo:   ruleRepo,
		guidelines: guidelines,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger.Named("validation"),
	}
}

// marketOutcome is one market's slot in the fan-out.  Exactly one of err
// or the value fields is meaningful.
type marketOutcome struct {
	market          string
	issues          []ctypes.ValidationIssue
	transformations []rules.CulturalTransformationRule
	readiness       int
	err             error
}

// ValidateCulturalAppropriateness runs the full pipeline for content
// against every target market.  Markets are evaluated in parallel; a
// failed lookup for one market degrades that market only.  If every
// market fails the run fails.
func (s *Service) ValidateCulturalAppropriateness(
	ctx context.Context,
	content ctypes.ContentInput,
	assetType string,
	targetMarkets []string,
) (*CulturalValidationResult, error) {
	start := time.Now()

	if content.IsEmpty() {
		return nil, errors.New(errors.ErrCodeContentEmpty, "content has no text or brand elements to score")
	}
	if len(targetMarkets) == 0 {
		return nil, errors.New(errors.ErrCodeNoTargetMarkets, "at least one target market is required")
	}

	outcomes := make([]marketOutcome, len(targetMarkets))
	g, gctx := errgroup.WithContext(ctx)
	for i, market := range targetMarkets {
		i, market := i, market
		g.Go(func() error {
			outcomes[i] = s.evaluateMarket(gctx, content, assetType, market)
			// Per-market failure degrades, never cancels siblings.
			return nil
		})
	}
	// Wait returns nil by construction; kept for the errgroup contract.
	_ = g.Wait()

	result := &CulturalValidationResult{
		Issues:              []ctypes.ValidationIssue{},
		TransformationRules: []rules.CulturalTransformationRule{},
		MarketReadiness:     map[string]int{},
		Recommendations:     []string{},
	}

	var lastErr error
	failed := 0
	for _, out := range outcomes {
		if out.err != nil {
			failed++
			lastErr = out.err
			result.Recommendations = append(result.Recommendations,
				"Market "+out.market+" could not be evaluated; rerun validation before launch")
			s.logger.Error("market evaluation failed",
				logging.String("market", out.market), logging.Err(out.err))
			continue
		}
		result.Issues = append(result.Issues, out.issues...)
		result.TransformationRules = append(result.TransformationRules, out.transformations...)
		result.MarketReadiness[out.market] = out.readiness
	}
	if failed == len(targetMarkets) {
		return nil, errors.Wrap(lastErr, errors.ErrCodeAllMarketsFailed,
			"no target market could be evaluated")
	}

	result.OverallScore = ComputeOverallScore(result.MarketReadiness, result.Issues)
	result.RiskLevel = DeriveRiskLevel(result.OverallScore, result.Issues)
	result.Recommendations = append(
		BuildRecommendations(result.Issues, result.MarketReadiness, result.TransformationRules),
		result.Recommendations...)

	for _, issue := range result.Issues {
		s.metrics.CountIssue(issue.Severity)
	}
	s.metrics.ObserveValidation(time.Since(start), result.RiskLevel, result.OverallScore)

	if err := s.publisher.PublishContentValidated(ctx, content.ID, targetMarkets, result.OverallScore, result.RiskLevel); err != nil {
		s.logger.Warn("content.validated publish failed", logging.Err(err))
	}

	s.logger.Info("validation complete",
		logging.String("content_id", content.ID),
		logging.Int("overall_score", result.OverallScore),
		logging.String("risk_level", result.RiskLevel.String()),
		logging.Int("issues", len(result.Issues)),
		logging.Duration("elapsed", time.Since(start)))

	return result, nil
}

// evaluateMarket runs one market's lookups, matching and readiness scoring.
func (s *Service) evaluateMarket(ctx context.Context, content ctypes.ContentInput, assetType, market string) marketOutcome {
	out := marketOutcome{market: market}

	tabooRules, err := s.ruleRepo.GetTabooRules(ctx, market)
	if err != nil {
		out.err = err
		return out
	}
	transformations, err := s.ruleRepo.GetTransformationRules(ctx, market, assetType)
	if err != nil {
		out.err = err
		return out
	}

	out.issues = MatchTabooRules(content, market, tabooRules)
	out.transformations = transformations
	out.readiness = ComputeMarketReadiness(out.issues, transformations)
	return out
}

// GetVisualGuidelines returns the curated (or generic-fallback) visual
// guidance for a market.
func (s *Service) GetVisualGuidelines(market string) rules.VisualCulturalGuidelines {
	return s.guidelines.GetVisualGuidelines(market)
}

// GenerateTransformationPlaybook builds the source→target adaptation plan
// for a market pair.
func (s *Service) GenerateTransformationPlaybook(
	ctx context.Context,
	content ctypes.ContentInput,
	assetType, sourceMarket, targetMarket string,
) (*TransformationPlaybook, error) {
	if targetMarket == "" {
		return nil, errors.New(errors.ErrCodeNoTargetMarkets, "target market is required")
	}
	transformations, err := s.ruleRepo.GetTransformationRules(ctx, targetMarket, assetType)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRuleStoreUnavailable,
			"transformation rule lookup failed").WithDetail(targetMarket)
	}
	guidelines := s.guidelines.GetVisualGuidelines(targetMarket)
	profile, _ := s.guidelines.GetMarketProfile(targetMarket)

	pb := BuildPlaybook(sourceMarket, targetMarket, assetType, transformations, guidelines, profile)
	return &pb, nil
}
