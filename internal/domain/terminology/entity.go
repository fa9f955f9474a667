// Package terminology implements the terminology bounded context: the
// regulator-tracked preferred terms for medical and brand concepts, their
// audience-context applicability, and the lookup contracts the validation
// engine consumes.
package terminology

import (
	"strings"
	"time"

	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ContextualUsage carries the audience-applicability flags of a terminology
// entry.  A false flag means the term must not appear in material aimed at
// that audience.
type ContextualUsage struct {
	PatientFacing       bool `json:"patient_facing"`
	HCPFacing           bool `json:"hcp_facing"`
	MarketingMaterials  bool `json:"marketing_materials"`
	RegulatoryDocuments bool `json:"regulatory_documents"`
}

// AllowedFor reports whether the entry may be used for the given audience
// context.
func (u ContextualUsage) AllowedFor(ctx ctypes.AudienceContext) bool {
	switch ctx {
	case ctypes.ContextPatient:
		return u.PatientFacing
	case ctypes.ContextHCP:
		return u.HCPFacing
	case ctypes.ContextMarketing:
		return u.MarketingMaterials
	case ctypes.ContextRegulatory:
		return u.RegulatoryDocuments
	}
	return false
}

// Entry is the canonical terminology record for one concept.  One entry may
// carry multiple source terms mapping to a single preferred term.
// Reference data; never mutated by the engine.
type Entry struct {
	ID                     string                  `json:"id"`
	BrandID                string                  `json:"brand_id"`
	TherapeuticArea        string                  `json:"therapeutic_area"`
	SourceTerms            []string                `json:"source_terms"`
	PreferredTerm          string                  `json:"preferred_term"`
	Definition             string                  `json:"definition"`
	RegulatoryStatus       ctypes.RegulatoryStatus `json:"regulatory_status"`
	UsageGuidelines        string                  `json:"usage_guidelines"`
	ContextualUsage        ContextualUsage         `json:"contextual_usage"`
	CulturalConsiderations map[string]string       `json:"cultural_considerations,omitempty"`
	RelatedTerms           []string                `json:"related_terms,omitempty"`
	LastUpdated            time.Time               `json:"last_updated"`
}

// Matches reports whether term equals the preferred term or any source term,
// case-insensitively.  This is the lookup predicate used by the validator.
func (e Entry) Matches(term string) bool {
	if strings.EqualFold(term, e.PreferredTerm) {
		return true
	}
	for _, s := range e.SourceTerms {
		if strings.EqualFold(term, s) {
			return true
		}
	}
	return false
}

// MatchesExactly reports whether term is byte-identical to the preferred
// term or any source term.  A case-insensitive match that is not exact is a
// near-variant and triggers the preferred-alternative deduction.
func (e Entry) MatchesExactly(term string) bool {
	if term == e.PreferredTerm {
		return true
	}
	for _, s := range e.SourceTerms {
		if term == s {
			return true
		}
	}
	return false
}

// MatchesPrefix reports whether any source term or the preferred term
// begins with the given partial, case-insensitively.  Used by the
// contextual suggester.
func (e Entry) MatchesPrefix(partial string) bool {
	p := strings.ToLower(partial)
	if strings.HasPrefix(strings.ToLower(e.PreferredTerm), p) {
		return true
	}
	for _, s := range e.SourceTerms {
		if strings.HasPrefix(strings.ToLower(s), p) {
			return true
		}
	}
	return false
}
