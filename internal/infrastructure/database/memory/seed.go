// Package memory provides in-memory implementations of the rule and
// terminology repositories, seeded with the curated rule tables.  They
// back unit tests and the offline CLI; production deployments use the
// postgres implementations behind the redis cache.
package memory

import (
	"time"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ─────────────────────────────────────────────────────────────────────────────
// Seed taboo rules
// ─────────────────────────────────────────────────────────────────────────────

func seedTabooRules() []rules.TabooContentRule {
	return []rules.TabooContentRule{
		{
			ID:           "cn-color-white",
			Market:       "China",
			Category:     ctypes.CategoryColor,
			Element:      "white",
			Severity:     ctypes.SeverityWarning,
			Reason:       "Associated with mourning and death",
			Alternatives: []string{"red", "gold"},
			Context:      rules.RuleContextMarketing,
		},
		{
			ID:           "cn-color-black",
			Market:       "China",
			Category:     ctypes.CategoryColor,
			Element:      "black",
			Severity:     ctypes.SeverityWarning,
			Reason:       "Associated with funerals and bad luck",
			Alternatives: []string{"red", "gold", "yellow"},
			Context:      rules.RuleContextMarketing,
		},
		{
			ID:           "cn-imagery-clock",
			Market:       "China",
			Category:     ctypes.CategoryImagery,
			Element:      "clock",
			Severity:     ctypes.SeverityCritical,
			Reason:       "Gifting clocks connotes attending a funeral",
			Alternatives: []string{"calendar motifs", "sunrise imagery"},
		},
		{
			ID:       "cn-text-four",
			Market:   "China",
			Category: ctypes.CategoryText,
			Element:  "four",
			Severity: ctypes.SeverityWarning,
			Reason:   "The number four is homophonous with death",
			Alternatives: []string{
				"spell out quantities differently",
				"restructure dosing language",
			},
		},
		{
			ID:           "jp-text-four",
			Market:       "Japan",
			Category:     ctypes.CategoryText,
			Element:      "four",
			Severity:     ctypes.SeverityWarning,
			Reason:       "The number four is avoided in healthcare contexts",
			Alternatives: []string{"rephrase dosing schedules"},
		},
		{
			ID:           "jp-concept-superlative",
			Market:       "Japan",
			Category:     ctypes.CategoryConcept,
			Element:      "the best treatment",
			Severity:     ctypes.SeverityCritical,
			Reason:       "Absolute superlative claims erode trust and breach local code",
			Alternatives: []string{"a well-studied treatment option"},
		},
		{
			ID:           "de-concept-guarantee",
			Market:       "Germany",
			Category:     ctypes.CategoryConcept,
			Element:      "guaranteed results",
			Severity:     ctypes.SeverityForbidden,
			Reason:       "Outcome guarantees violate HWG advertising restrictions",
			Alternatives: []string{"clinically studied outcomes"},
		},
		{
			ID:           "us-text-cure",
			Market:       "United States",
			Category:     ctypes.CategoryText,
			Element:      "cure",
			Severity:     ctypes.SeverityForbidden,
			Reason:       "Cure claims are prohibited for this product class",
			Alternatives: []string{"treat", "manage"},
		},
		{
			ID:           "sa-imagery-alcohol",
			Market:       "Saudi Arabia",
			Category:     ctypes.CategoryImagery,
			Element:      "alcohol",
			Severity:     ctypes.SeverityForbidden,
			Reason:       "Alcohol references are prohibited",
			Alternatives: []string{"tea or coffee social settings"},
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Seed transformation rules
// ─────────────────────────────────────────────────────────────────────────────

func seedTransformationRules() []rules.CulturalTransformationRule {
	return []rules.CulturalTransformationRule{
		{
			ID:                 "cn-banner-family",
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformText,
			Rule:               "Replace individual benefit claims with family benefit framing",
			Example: rules.TransformationExample{
				Before:    "Take control of your health",
				After:     "Protect your family's health",
				Rationale: "Family involvement drives healthcare decisions",
			},
			Priority:        ctypes.PriorityHigh,
			EstimatedEffort: "1 day",
		},
		{
			ID:                 "cn-banner-authority",
			Market:             "China",
			AssetType:          "banner",
			TransformationType: ctypes.TransformStructure,
			Rule:               "Move institutional endorsements above the fold",
			Priority:           ctypes.PriorityMedium,
			EstimatedEffort:    "2 days",
		},
		{
			ID:                 "jp-email-softening",
			Market:             "Japan",
			AssetType:          "email",
			TransformationType: ctypes.TransformTone,
			Rule:               "Soften direct imperatives into invitations",
			Example: rules.TransformationExample{
				Before:    "Ask your doctor today",
				After:     "You may wish to discuss this with your doctor",
				Rationale: "Indirect phrasing is expected in health communication",
			},
			Priority:        ctypes.PriorityHigh,
			EstimatedEffort: "0.5 day",
		},
		{
			ID:                 "de-banner-evidence",
			Market:             "Germany",
			AssetType:          "banner",
			TransformationType: ctypes.TransformText,
			Rule:               "Add inline clinical data references to benefit claims",
			Priority:           ctypes.PriorityMedium,
			EstimatedEffort:    "1 day",
		},
		{
			ID:                 "sa-banner-rtl",
			Market:             "Saudi Arabia",
			AssetType:          "banner",
			TransformationType: ctypes.TransformVisual,
			Rule:               "Mirror layout for right-to-left reading order",
			Priority:           ctypes.PriorityCritical,
			EstimatedEffort:    "3 days",
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Seed terminology
// ─────────────────────────────────────────────────────────────────────────────

func seedTerminology() []terminology.Entry {
	updated := time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)
	return []terminology.Entry{
		{
			ID:               "term-mi",
			BrandID:          "brand-cardio",
			TherapeuticArea:  "cardiology",
			SourceTerms:      []string{"heart attack", "MI"},
			PreferredTerm:    "myocardial infarction",
			Definition:       "Necrosis of heart muscle resulting from ischemia",
			RegulatoryStatus: ctypes.StatusApproved,
			UsageGuidelines:  "Use the clinical term in HCP materials; lay term acceptable for patients",
			ContextualUsage: terminology.ContextualUsage{
				PatientFacing:       true,
				HCPFacing:           true,
				MarketingMaterials:  true,
				RegulatoryDocuments: true,
			},
			CulturalConsiderations: map[string]string{
				"Japan": "Prefer indirect phrasing when addressing mortality",
			},
			RelatedTerms: []string{"acute coronary syndrome"},
			LastUpdated:  updated,
		},
		{
			ID:               "term-hypertension",
			BrandID:          "brand-cardio",
			TherapeuticArea:  "cardiology",
			SourceTerms:      []string{"high blood pressure"},
			PreferredTerm:    "hypertension",
			Definition:       "Persistently elevated arterial blood pressure",
			RegulatoryStatus: ctypes.StatusApproved,
			UsageGuidelines:  "Either form acceptable; prefer the clinical term in claims",
			ContextualUsage: terminology.ContextualUsage{
				PatientFacing:       true,
				HCPFacing:           true,
				MarketingMaterials:  true,
				RegulatoryDocuments: true,
			},
			LastUpdated: updated,
		},
		{
			ID:               "term-breakthrough",
			BrandID:          "brand-cardio",
			TherapeuticArea:  "cardiology",
			SourceTerms:      []string{"breakthrough therapy"},
			PreferredTerm:    "novel treatment option",
			Definition:       "Marketing descriptor for newly approved therapies",
			RegulatoryStatus: ctypes.StatusRestricted,
			UsageGuidelines:  "Only permitted when the regulator granted the designation",
			ContextualUsage: terminology.ContextualUsage{
				HCPFacing:           true,
				RegulatoryDocuments: true,
			},
			LastUpdated: updated,
		},
		{
			ID:               "term-wonderdrug",
			BrandID:          "brand-cardio",
			TherapeuticArea:  "cardiology",
			SourceTerms:      []string{"wonder drug", "miracle treatment"},
			PreferredTerm:    "treatment",
			Definition:       "Prohibited efficacy superlatives",
			RegulatoryStatus: ctypes.StatusForbidden,
			UsageGuidelines:  "Never use; implies unsubstantiated efficacy",
			ContextualUsage:  terminology.ContextualUsage{},
			LastUpdated:      updated,
		},
		{
			ID:               "term-adherence",
			BrandID:          "brand-cardio",
			TherapeuticArea:  "cardiology",
			SourceTerms:      []string{"compliance", "medication adherence"},
			PreferredTerm:    "treatment adherence",
			Definition:       "The extent to which patients follow the prescribed regimen",
			RegulatoryStatus: ctypes.StatusApproved,
			UsageGuidelines:  "Prefer adherence over compliance in patient materials",
			ContextualUsage: terminology.ContextualUsage{
				PatientFacing:      true,
				HCPFacing:          true,
				MarketingMaterials: true,
			},
			LastUpdated: updated,
		},
	}
}
