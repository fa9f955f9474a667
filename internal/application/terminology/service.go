package terminology

import (
	"context"
	"fmt"

	domain "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// TermExtractor supplies candidate terms from free text.  Implemented by
// the intelligence/termextract package.
type TermExtractor interface {
	Extract(text string) []string
}

// TerminologyIntelligenceResult is the output of a full text analysis.
type TerminologyIntelligenceResult struct {
	OverallComplianceScore int                           `json:"overall_compliance_score"`
	TermResults            []ctypes.TermValidationResult `json:"term_results"`
	CriticalIssues         []string                      `json:"critical_issues"`
	Recommendations        []string                      `json:"recommendations"`
	ApprovedAlternatives   map[string]string             `json:"approved_alternatives"`
}

// Service is the terminology intelligence facade: extraction, per-term
// validation, aggregation, suggestions, and the optional TM cross-check.
type Service struct {
	repo        domain.Repository
	extractor   TermExtractor
	consistency *ConsistencyChecker
	logger      logging.Logger
}

// NewService wires the terminology service.  tm may be nil to disable the
// consistency cross-check.
func NewService(repo domain.Repository, extractor TermExtractor, tm domain.TranslationMemory, logger logging.Logger) *Service {
	return &Service{
		repo:        repo,
		extractor:   extractor,
		consistency: NewConsistencyChecker(tm, logger),
		logger:      logger.Named("terminology"),
	}
}

// AnalyzeTerminology extracts candidate terms from text and validates each
// against the brand's terminology database.
func (s *Service) AnalyzeTerminology(
	ctx context.Context,
	text, brandID, therapeuticArea string,
	audience ctypes.AudienceContext,
	targetMarkets []string,
) (*TerminologyIntelligenceResult, error) {
	if !audience.IsValid() {
		return nil, errors.New(errors.ErrCodeInvalidContext, "unknown audience context").
			WithDetail(string(audience))
	}

	entries, err := s.repo.GetEntries(ctx, brandID, therapeuticArea)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTermAnalysisFailed, "terminology lookup failed").
			WithDetail(brandID)
	}

	terms := s.extractor.Extract(text)
	result := &TerminologyIntelligenceResult{
		TermResults:          []ctypes.TermValidationResult{},
		CriticalIssues:       []string{},
		Recommendations:      []string{},
		ApprovedAlternatives: map[string]string{},
	}

	var matchedPreferred []string
	for _, term := range terms {
		entry := FindEntry(term, entries)
		verdict := ValidateTerm(term, entry, audience, targetMarkets)
		result.TermResults = append(result.TermResults, verdict)

		if entry != nil {
			matchedPreferred = append(matchedPreferred, entry.PreferredTerm)
			if entry.RegulatoryStatus == ctypes.StatusForbidden {
				result.CriticalIssues = append(result.CriticalIssues,
					fmt.Sprintf("Forbidden term %q must be removed", term))
			}
			if verdict.PreferredAlternative != "" {
				result.ApprovedAlternatives[term] = verdict.PreferredAlternative
			}
		}
		if !verdict.IsValid {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Replace or review %q (score %d)", term, verdict.ValidationScore))
		}
	}

	result.OverallComplianceScore = ComplianceScore(result.TermResults)

	if s.consistency.Enabled() && len(matchedPreferred) > 0 {
		warnings := s.consistency.Check(ctx, brandID, dedupe(matchedPreferred), targetMarkets)
		result.Recommendations = append(result.Recommendations, warnings...)
	}

	s.logger.Debug("terminology analysis complete",
		logging.String("brand_id", brandID),
		logging.Int("terms", len(terms)),
		logging.Int("score", result.OverallComplianceScore))

	return result, nil
}

// ValidateTermInRealTime validates a single term for live feedback.
// therapeuticArea is intentionally unscoped so the lookup spans the whole
// brand vocabulary.
func (s *Service) ValidateTermInRealTime(
	ctx context.Context,
	term, brandID string,
	audience ctypes.AudienceContext,
	targetMarket string,
) (*ctypes.TermValidationResult, error) {
	if !audience.IsValid() {
		return nil, errors.New(errors.ErrCodeInvalidContext, "unknown audience context").
			WithDetail(string(audience))
	}
	entries, err := s.repo.GetEntries(ctx, brandID, "")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTermAnalysisFailed, "terminology lookup failed").
			WithDetail(brandID)
	}

	var markets []string
	if targetMarket != "" {
		markets = []string{targetMarket}
	}
	verdict := ValidateTerm(term, FindEntry(term, entries), audience, markets)
	return &verdict, nil
}

// GetContextualSuggestions returns the top five approved entries matching
// a partial term, ranked by confidence.  targetMarket is optional; when
// given, terms with a cultural consideration for that market rank lower.
func (s *Service) GetContextualSuggestions(
	ctx context.Context,
	partial, brandID, therapeuticArea string,
	audience ctypes.AudienceContext,
	targetMarket string,
) ([]ctypes.TermSuggestion, error) {
	if partial == "" {
		return []ctypes.TermSuggestion{}, nil
	}
	entries, err := s.repo.GetEntries(ctx, brandID, therapeuticArea)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTermAnalysisFailed, "terminology lookup failed").
			WithDetail(brandID)
	}
	return RankSuggestions(partial, entries, audience, targetMarket), nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
