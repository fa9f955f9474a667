// Package rules implements the cultural-rule bounded context: taboo content
// rules, transformation rules, visual guidelines, and per-market profile
// data.  All reference data is immutable once loaded; the engine reads it
// through the Repository interface and never mutates it.  Infrastructure
// concerns (persistence, caching) are handled by adapter layers.
package rules

import (
	"strings"
	"time"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ─────────────────────────────────────────────────────────────────────────────
// TabooContentRule
// ─────────────────────────────────────────────────────────────────────────────

// RuleContext narrows a taboo rule to a usage domain.  An empty context
// means the rule applies everywhere.
type RuleContext string

const (
	RuleContextHealthcare RuleContext = "healthcare"
	RuleContextMarketing  RuleContext = "marketing"
	RuleContextGeneral    RuleContext = "general"
)

// TabooContentRule is a market-specific prohibition or caution on a text,
// visual, or conceptual element.  Created by the rule store; never mutated
// by the engine.
type TabooContentRule struct {
	ID           string               `json:"id"`
	Market       string               `json:"market"`
	Category     ctypes.RuleCategory  `json:"category"`
	Element      string               `json:"element"`
	Severity     ctypes.Severity      `json:"severity"`
	Reason       string               `json:"reason"`
	Alternatives []string             `json:"alternatives,omitempty"`
	Context      RuleContext          `json:"context,omitempty"`
}

// Validate checks structural integrity of a rule as loaded from the store.
func (r TabooContentRule) Validate() error {
	if r.Market == "" {
		return errors.New(errors.ErrCodeRuleInvalid, "taboo rule missing market")
	}
	if !r.Category.IsValid() {
		return errors.New(errors.ErrCodeRuleInvalid, "taboo rule has invalid category").
			WithDetail(string(r.Category))
	}
	if r.Element == "" {
		return errors.New(errors.ErrCodeRuleInvalid, "taboo rule missing element")
	}
	if !r.Severity.IsValid() {
		return errors.New(errors.ErrCodeRuleInvalid, "taboo rule has invalid severity").
			WithDetail(string(r.Severity))
	}
	return nil
}

// RecommendedAlternatives renders the rule's alternatives as a single
// recommendation string, or a generic fallback when none are curated.
func (r TabooContentRule) RecommendedAlternatives() string {
	if len(r.Alternatives) == 0 {
		return "Remove or replace the flagged element"
	}
	return "Consider alternatives: " + strings.Join(r.Alternatives, ", ")
}

// ─────────────────────────────────────────────────────────────────────────────
// CulturalTransformationRule
// ─────────────────────────────────────────────────────────────────────────────

// TransformationExample is the curated before/after illustration attached to
// a transformation rule.
type TransformationExample struct {
	Before    string `json:"before"`
	After     string `json:"after"`
	Rationale string `json:"rationale"`
}

// CulturalTransformationRule is a prescriptive rewrite pattern required to
// adapt content for a market/asset-type pair.
type CulturalTransformationRule struct {
	ID                 string                     `json:"id"`
	Market             string                     `json:"market"`
	AssetType          string                     `json:"asset_type"`
	TransformationType ctypes.TransformationType  `json:"transformation_type"`
	Rule               string                     `json:"rule"`
	Example            TransformationExample      `json:"example"`
	Priority           ctypes.RulePriority        `json:"priority"`
	EstimatedEffort    string                     `json:"estimated_effort"`
}

// RenderedExample returns the example as a "before → after" string for
// playbook output.
func (r CulturalTransformationRule) RenderedExample() string {
	if r.Example.Before == "" && r.Example.After == "" {
		return ""
	}
	return r.Example.Before + " → " + r.Example.After
}

// ─────────────────────────────────────────────────────────────────────────────
// VisualCulturalGuidelines
// ─────────────────────────────────────────────────────────────────────────────

// ColorGuidance lists preferred and avoided colors for a market with the
// cultural reasoning behind each avoidance.
type ColorGuidance struct {
	Preferred []string          `json:"preferred"`
	Avoid     []string          `json:"avoid"`
	Notes     map[string]string `json:"notes,omitempty"`
}

// ImageryGuidance lists preferred and avoided imagery motifs.
type ImageryGuidance struct {
	Preferred []string `json:"preferred"`
	Avoid     []string `json:"avoid"`
}

// LayoutGuidance describes reading order and information hierarchy for a
// market.
type LayoutGuidance struct {
	ReadingDirection string `json:"reading_direction"`
	Hierarchy        string `json:"hierarchy"`
	Density          string `json:"density"`
}

// TypographyGuidance carries script and font-sizing guidance.
type TypographyGuidance struct {
	PreferredScripts []string `json:"preferred_scripts"`
	MinBodySizePt    int      `json:"min_body_size_pt"`
	Notes            string   `json:"notes,omitempty"`
}

// VisualCulturalGuidelines is the complete visual adaptation guidance for
// one market, returned by GetVisualGuidelines.  Unknown markets receive
// DefaultVisualGuidelines rather than an error.
type VisualCulturalGuidelines struct {
	Market     string             `json:"market"`
	Colors     ColorGuidance      `json:"colors"`
	Imagery    ImageryGuidance    `json:"imagery"`
	Layout     LayoutGuidance     `json:"layout"`
	Typography TypographyGuidance `json:"typography"`
	Generic    bool               `json:"generic"`
}

// ─────────────────────────────────────────────────────────────────────────────
// MarketProfile
// ─────────────────────────────────────────────────────────────────────────────

// MarketProfile aggregates the curated per-market knowledge the engine
// consults outside the rule tables: communication style and cultural notes.
type MarketProfile struct {
	Market             string                      `json:"market"`
	CommunicationStyle ctypes.CommunicationStyle   `json:"communication_style"`
	CulturalNotes      []string                    `json:"cultural_notes"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}
