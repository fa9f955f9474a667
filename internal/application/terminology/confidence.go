package terminology

import (
	"sort"
	"strings"

	domain "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// Confidence bonuses for suggestion ranking.  This scale is independent of
// the validation score; it orders suggestions only.
const (
	confidenceBase           = 50
	bonusPreferredMatch      = 40
	bonusSourceMatch         = 30
	bonusContextAppropriate  = 20
	bonusApprovedStatus      = 10
	deductionCulturalCaution = 10

	maxSuggestions = 5
)

// TermConfidence ranks how confidently an entry can be suggested for a
// term.  Preferred-term and source-term bonuses are mutually exclusive;
// matching is case-insensitive.  When a target market is given, entries
// carrying a cultural consideration for that market rank lower so the
// suggester steers writers toward terms that need no market caveat.
func TermConfidence(term string, entry domain.Entry, audience ctypes.AudienceContext, targetMarket string) int {
	confidence := confidenceBase

	if strings.EqualFold(term, entry.PreferredTerm) {
		confidence += bonusPreferredMatch
	} else {
		for _, s := range entry.SourceTerms {
			if strings.EqualFold(term, s) {
				confidence += bonusSourceMatch
				break
			}
		}
	}
	if entry.ContextualUsage.AllowedFor(audience) {
		confidence += bonusContextAppropriate
	}
	if entry.RegulatoryStatus == ctypes.StatusApproved {
		confidence += bonusApprovedStatus
	}
	if targetMarket != "" {
		if _, ok := entry.CulturalConsiderations[targetMarket]; ok {
			confidence -= deductionCulturalCaution
		}
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

// RankSuggestions builds the top suggestions for a partial term: approved
// entries only, prefix-matched, ordered by confidence descending with
// ties broken by preferred term ascending, capped at five.  targetMarket
// is optional; empty skips the cultural-fit deduction.
func RankSuggestions(partial string, entries []domain.Entry, audience ctypes.AudienceContext, targetMarket string) []ctypes.TermSuggestion {
	suggestions := []ctypes.TermSuggestion{}
	for _, entry := range entries {
		if entry.RegulatoryStatus != ctypes.StatusApproved {
			continue
		}
		if !entry.MatchesPrefix(partial) {
			continue
		}
		suggestions = append(suggestions, ctypes.TermSuggestion{
			Term:       entry.PreferredTerm,
			Definition: entry.Definition,
			Confidence: TermConfidence(partial, entry, audience, targetMarket),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		return suggestions[i].Term < suggestions[j].Term
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
