package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/infrastructure/monitoring/logging"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// Direct and indirect persuasion-register word lists for the style
// heuristic.  Matching is whole-word, case-insensitive.
var (
	directWords   = []string{"best", "guaranteed", "proven", "must", "should"}
	indirectWords = []string{"may", "could", "consider", "perhaps", "might"}
)

const styleMismatchPenalty = 15

// ScoreRealTime is the single-pass scorer behind live-typing feedback.
// Only text-category taboo rules are consulted; visual and structural
// checks are skipped for latency.  One accumulator starts at 100 and
// decreases across all requested markets.
func (s *Service) ScoreRealTime(ctx context.Context, text string, targetMarkets []string) (ctypes.RealTimeScore, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRealtime(time.Since(start)) }()

	result := ctypes.RealTimeScore{
		Score:       100,
		Warnings:    []ctypes.RealTimeWarning{},
		Suggestions: []string{},
	}
	if strings.TrimSpace(text) == "" || len(targetMarkets) == 0 {
		return result, nil
	}

	lower := strings.ToLower(text)
	directCount := countWordHits(lower, directWords)
	indirectCount := countWordHits(lower, indirectWords)

	for _, market := range targetMarkets {
		tabooRules, err := s.ruleRepo.GetTabooRules(ctx, market)
		if err != nil {
			// Real-time feedback degrades silently on rule-store trouble;
			// the full validation path is where hard failures surface.
			s.logger.Warn("realtime rule lookup failed",
				logging.String("market", market), logging.Err(err))
			continue
		}
		for _, rule := range tabooRules {
			if rule.Category != ctypes.CategoryText {
				continue
			}
			if !strings.Contains(lower, strings.ToLower(rule.Element)) {
				continue
			}
			result.Score -= severityPenalty[rule.Severity]
			result.Warnings = append(result.Warnings, ctypes.RealTimeWarning{
				Market:   market,
				Element:  rule.Element,
				Severity: rule.Severity,
				Message:  rule.Reason,
			})
			if alt := rule.RecommendedAlternatives(); alt != "" {
				result.Suggestions = append(result.Suggestions, alt)
			}
		}

		profile, curated := s.guidelines.GetMarketProfile(market)
		if !curated {
			continue
		}
		if styleMismatch(profile.CommunicationStyle, directCount, indirectCount) {
			result.Score -= styleMismatchPenalty
			result.Warnings = append(result.Warnings, ctypes.RealTimeWarning{
				Market:   market,
				Element:  "tone",
				Severity: ctypes.SeverityWarning,
				Message:  fmt.Sprintf("Tone does not match the %s communication style preferred in %s", profile.CommunicationStyle, market),
			})
			result.Suggestions = append(result.Suggestions,
				styleSuggestion(profile.CommunicationStyle))
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}
	return result, nil
}

// styleMismatch applies the register heuristic: direct markets expect at
// least as many direct as indirect cues; indirect markets expect strictly
// more indirect cues.
func styleMismatch(style ctypes.CommunicationStyle, directCount, indirectCount int) bool {
	switch style {
	case ctypes.StyleDirect:
		return directCount < indirectCount
	case ctypes.StyleIndirect:
		return indirectCount <= directCount
	}
	return false
}

func styleSuggestion(style ctypes.CommunicationStyle) string {
	if style == ctypes.StyleIndirect {
		return "Soften absolute claims; prefer words like 'may' or 'consider'"
	}
	return "Lead with direct, evidence-backed benefit statements"
}

// countWordHits counts whole-word occurrences of any listed word in the
// lowercased text.
func countWordHits(lowerText string, words []string) int {
	fields := strings.FieldsFunc(lowerText, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	count := 0
	for _, f := range fields {
		for _, w := range words {
			if f == w {
				count++
			}
		}
	}
	return count
}
