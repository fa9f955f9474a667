// Package terminology implements terminology intelligence on top of the
// terminology domain: per-term validation against the approved database,
// confidence-ranked contextual suggestions, text-level analysis, and the
// optional translation-consistency cross-check.
package terminology

import (
	"fmt"
	"math"

	domain "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// Per-term score deductions, applied in a fixed order.  The validation
// score and the suggestion-ranking confidence are deliberately separate
// scales.
const (
	deductForbiddenStatus  = 50
	deductPendingStatus    = 30
	deductRestrictedStatus = 20
	deductContextMismatch  = 25
	deductNearVariant      = 15
	deductPerCulturalNote  = 10

	notFoundScore  = 30
	validThreshold = 70
)

// ValidateTerm scores one term against its terminology entry.  A nil entry
// means the term is absent from the database and earns the fixed
// not-found verdict.  targetMarkets narrows cultural warnings; deductions
// apply only for markets actually requested.
func ValidateTerm(term string, entry *domain.Entry, audience ctypes.AudienceContext, targetMarkets []string) ctypes.TermValidationResult {
	if entry == nil {
		return ctypes.TermValidationResult{
			Term:            term,
			IsValid:         false,
			ValidationScore: notFoundScore,
			Issues:          []string{"Term not found in approved terminology database"},
			Suggestions:     []string{},
		}
	}

	result := ctypes.TermValidationResult{
		Term:             term,
		ValidationScore:  100,
		Issues:           []string{},
		Suggestions:      []string{},
		CulturalWarnings: []string{},
		RegulatoryNotes:  entry.UsageGuidelines,
	}

	switch entry.RegulatoryStatus {
	case ctypes.StatusForbidden:
		result.ValidationScore -= deductForbiddenStatus
		result.Issues = append(result.Issues,
			fmt.Sprintf("Term %q is forbidden for regulatory use", term))
	case ctypes.StatusRestricted:
		result.ValidationScore -= deductRestrictedStatus
		result.Issues = append(result.Issues,
			fmt.Sprintf("Term %q is restricted; usage conditions apply", term))
		result.Suggestions = append(result.Suggestions,
			"Review usage guidelines before using this term: "+entry.UsageGuidelines)
	case ctypes.StatusPending:
		result.ValidationScore -= deductPendingStatus
		result.Issues = append(result.Issues,
			fmt.Sprintf("Term %q is pending regulatory approval", term))
	}

	if !entry.ContextualUsage.AllowedFor(audience) {
		result.ValidationScore -= deductContextMismatch
		result.Issues = append(result.Issues,
			fmt.Sprintf("Term %q is not approved for %s-facing content", term, audience))
	}

	for _, market := range targetMarkets {
		if note, ok := entry.CulturalConsiderations[market]; ok {
			result.ValidationScore -= deductPerCulturalNote
			result.CulturalWarnings = append(result.CulturalWarnings,
				fmt.Sprintf("%s: %s", market, note))
		}
	}

	if !entry.MatchesExactly(term) {
		result.ValidationScore -= deductNearVariant
		result.PreferredAlternative = entry.PreferredTerm
		result.Suggestions = append(result.Suggestions,
			fmt.Sprintf("Use the preferred term %q", entry.PreferredTerm))
	}

	if result.ValidationScore < 0 {
		result.ValidationScore = 0
	}
	result.IsValid = result.ValidationScore >= validThreshold
	return result
}

// FindEntry returns the first entry whose preferred or source terms match
// the term case-insensitively, or nil when none does.
func FindEntry(term string, entries []domain.Entry) *domain.Entry {
	for i := range entries {
		if entries[i].Matches(term) {
			return &entries[i]
		}
	}
	return nil
}

// ComplianceScore is the terminology aggregate: the arithmetic mean of
// per-term validation scores, or 100 when no terms were analyzed.
func ComplianceScore(results []ctypes.TermValidationResult) int {
	if len(results) == 0 {
		return 100
	}
	sum := 0
	for _, r := range results {
		sum += r.ValidationScore
	}
	return ctypes.ClampScore(int(math.Round(float64(sum) / float64(len(results)))))
}
