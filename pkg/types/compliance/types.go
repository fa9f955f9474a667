// Package compliance defines the closed enumerations and shared value types
// used across the compliance scoring engine: severities, rule categories,
// risk levels, regulatory statuses, audience contexts, and the per-run
// derived results that every layer exchanges.  Reference-data entities
// (taboo rules, transformation rules, terminology entries) live in their
// domain packages; only types shared across layers belong here.
package compliance

import (
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Severity
// ─────────────────────────────────────────────────────────────────────────────

// Severity classifies how serious a taboo-content match is for a market.
type Severity string

const (
	SeverityWarning   Severity = "warning"
	SeverityCritical  Severity = "critical"
	SeverityForbidden Severity = "forbidden"
)

// IsValid reports whether s is a member of the closed severity set.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityWarning, SeverityCritical, SeverityForbidden:
		return true
	}
	return false
}

func (s Severity) String() string { return string(s) }

// ParseSeverity converts a raw string into a Severity.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid severity %q", raw)
	}
	return s, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Rule category
// ─────────────────────────────────────────────────────────────────────────────

// RuleCategory identifies which aspect of content a taboo rule constrains.
type RuleCategory string

const (
	CategoryColor   RuleCategory = "color"
	CategorySymbol  RuleCategory = "symbol"
	CategoryNumber  RuleCategory = "number"
	CategoryConcept RuleCategory = "concept"
	CategoryImagery RuleCategory = "imagery"
	CategoryGesture RuleCategory = "gesture"
	CategoryText    RuleCategory = "text"
)

// IsValid reports whether c is a member of the closed category set.
func (c RuleCategory) IsValid() bool {
	switch c {
	case CategoryColor, CategorySymbol, CategoryNumber, CategoryConcept,
		CategoryImagery, CategoryGesture, CategoryText:
		return true
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Issue type
// ─────────────────────────────────────────────────────────────────────────────

// IssueType classifies a validation issue for downstream consumers.
type IssueType string

const (
	IssueTabooContent       IssueType = "taboo_content"
	IssueCulturalMismatch   IssueType = "cultural_mismatch"
	IssueToneInappropriate  IssueType = "tone_inappropriate"
	IssueVisualConcern      IssueType = "visual_concern"
)

// ─────────────────────────────────────────────────────────────────────────────
// Risk level
// ─────────────────────────────────────────────────────────────────────────────

// RiskLevel is the coarse classification derived from issues and score.
// It gates downstream workflow (e.g., blocking publication).
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func (r RiskLevel) String() string { return string(r) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation rules
// ─────────────────────────────────────────────────────────────────────────────

// TransformationType partitions transformation rules in a playbook.
type TransformationType string

const (
	TransformText      TransformationType = "text"
	TransformVisual    TransformationType = "visual"
	TransformStructure TransformationType = "structure"
	TransformTone      TransformationType = "tone"
)

// RulePriority orders transformation rules by urgency.
type RulePriority string

const (
	PriorityLow      RulePriority = "low"
	PriorityMedium   RulePriority = "medium"
	PriorityHigh     RulePriority = "high"
	PriorityCritical RulePriority = "critical"
)

// ─────────────────────────────────────────────────────────────────────────────
// Terminology
// ─────────────────────────────────────────────────────────────────────────────

// RegulatoryStatus is the regulator-tracked approval state of a term.
type RegulatoryStatus string

const (
	StatusApproved   RegulatoryStatus = "approved"
	StatusPending    RegulatoryStatus = "pending"
	StatusRestricted RegulatoryStatus = "restricted"
	StatusForbidden  RegulatoryStatus = "forbidden"
)

// AudienceContext identifies the audience a piece of content targets.
// Each terminology entry carries an applicability flag per context.
type AudienceContext string

const (
	ContextPatient    AudienceContext = "patient"
	ContextHCP        AudienceContext = "hcp"
	ContextMarketing  AudienceContext = "marketing"
	ContextRegulatory AudienceContext = "regulatory"
)

// IsValid reports whether a is a member of the closed context set.
func (a AudienceContext) IsValid() bool {
	switch a {
	case ContextPatient, ContextHCP, ContextMarketing, ContextRegulatory:
		return true
	}
	return false
}

// ParseAudienceContext converts a raw string into an AudienceContext.
func ParseAudienceContext(raw string) (AudienceContext, error) {
	a := AudienceContext(raw)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid audience context %q", raw)
	}
	return a, nil
}

// CommunicationStyle is a market's preferred persuasion register,
// used by the real-time style heuristic.
type CommunicationStyle string

const (
	StyleDirect   CommunicationStyle = "direct"
	StyleIndirect CommunicationStyle = "indirect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Content input
// ─────────────────────────────────────────────────────────────────────────────

// BrandElements carries the declared visual attributes of a piece of content.
// The engine never inspects binary assets; callers declare colors and imagery
// motifs as strings.
type BrandElements struct {
	Colors  []string `json:"colors,omitempty"`
	Imagery []string `json:"imagery,omitempty"`
}

// ContentInput is the marketing copy under validation.
type ContentInput struct {
	ID            string        `json:"id,omitempty"`
	Headline      string        `json:"headline"`
	Body          string        `json:"body"`
	CTA           string        `json:"cta"`
	BrandElements BrandElements `json:"brand_elements"`
}

// HasText reports whether any text field is non-empty.
func (c ContentInput) HasText() bool {
	return c.Headline != "" || c.Body != "" || c.CTA != ""
}

// IsEmpty reports whether the content carries nothing the engine can score.
func (c ContentInput) IsEmpty() bool {
	return !c.HasText() && len(c.BrandElements.Colors) == 0 && len(c.BrandElements.Imagery) == 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived results
// ─────────────────────────────────────────────────────────────────────────────

// ValidationIssue is one concrete compliance finding.  Issues are constructed
// fresh per validation run and never persisted by the engine.
type ValidationIssue struct {
	Type           IssueType `json:"type"`
	Severity       Severity  `json:"severity"`
	Element        string    `json:"element"`
	Market         string    `json:"market"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

// TermValidationResult is the per-term verdict from the terminology validator.
type TermValidationResult struct {
	Term                 string   `json:"term"`
	IsValid              bool     `json:"is_valid"`
	ValidationScore      int      `json:"validation_score"`
	Issues               []string `json:"issues"`
	Suggestions          []string `json:"suggestions"`
	PreferredAlternative string   `json:"preferred_alternative,omitempty"`
	RegulatoryNotes      string   `json:"regulatory_notes,omitempty"`
	CulturalWarnings     []string `json:"cultural_warnings,omitempty"`
}

// RealTimeWarning is a single finding from the real-time scorer.
type RealTimeWarning struct {
	Market   string   `json:"market"`
	Element  string   `json:"element"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// RealTimeScore is the lightweight result returned to live-typing callers.
type RealTimeScore struct {
	Score       int               `json:"score"`
	Warnings    []RealTimeWarning `json:"warnings"`
	Suggestions []string          `json:"suggestions"`
}

// TermSuggestion is one ranked entry from the contextual suggester.
type TermSuggestion struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Confidence int    `json:"confidence"`
}

// ClampScore bounds a score to the canonical [0,100] range.  Every score the
// engine emits passes through this function.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
