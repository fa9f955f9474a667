package memory

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/terminology"
	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/errors"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// ruleFile is the YAML document shape accepted by LoadRulesFromYAML.
type ruleFile struct {
	TabooRules []struct {
		ID           string   `yaml:"id"`
		Market       string   `yaml:"market"`
		Category     string   `yaml:"category"`
		Element      string   `yaml:"element"`
		Severity     string   `yaml:"severity"`
		Reason       string   `yaml:"reason"`
		Alternatives []string `yaml:"alternatives"`
		Context      string   `yaml:"context"`
	} `yaml:"taboo_rules"`
	TransformationRules []struct {
		ID                 string `yaml:"id"`
		Market             string `yaml:"market"`
		AssetType          string `yaml:"asset_type"`
		TransformationType string `yaml:"transformation_type"`
		Rule               string `yaml:"rule"`
		Example            struct {
			Before    string `yaml:"before"`
			After     string `yaml:"after"`
			Rationale string `yaml:"rationale"`
		} `yaml:"example"`
		Priority        string `yaml:"priority"`
		EstimatedEffort string `yaml:"estimated_effort"`
	} `yaml:"transformation_rules"`
	TerminologyEntries []struct {
		ID               string   `yaml:"id"`
		BrandID          string   `yaml:"brand_id"`
		TherapeuticArea  string   `yaml:"therapeutic_area"`
		SourceTerms      []string `yaml:"source_terms"`
		PreferredTerm    string   `yaml:"preferred_term"`
		Definition       string   `yaml:"definition"`
		RegulatoryStatus string   `yaml:"regulatory_status"`
		UsageGuidelines  string   `yaml:"usage_guidelines"`
		ContextualUsage  struct {
			PatientFacing       bool `yaml:"patient_facing"`
			HCPFacing           bool `yaml:"hcp_facing"`
			MarketingMaterials  bool `yaml:"marketing_materials"`
			RegulatoryDocuments bool `yaml:"regulatory_documents"`
		} `yaml:"contextual_usage"`
		CulturalConsiderations map[string]string `yaml:"cultural_considerations"`
		RelatedTerms           []string          `yaml:"related_terms"`
	} `yaml:"terminology_entries"`
}

// LoadRulesFromYAML reads a rule file and returns seeded in-memory
// repositories.  Invalid taboo rules fail the load; the file is curated
// data and silent drops would mask editing mistakes.
func LoadRulesFromYAML(path string) (*RuleRepository, *TerminologyRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeRuleStoreUnavailable, "rule file read failed").
			WithDetail(path)
	}

	var doc ruleFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeSerialization, "rule file decode failed").
			WithDetail(path)
	}

	ruleRepo := NewRuleRepository()
	for _, t := range doc.TabooRules {
		rule := rules.TabooContentRule{
			ID:           t.ID,
			Market:       t.Market,
			Category:     ctypes.RuleCategory(t.Category),
			Element:      t.Element,
			Severity:     ctypes.Severity(t.Severity),
			Reason:       t.Reason,
			Alternatives: t.Alternatives,
			Context:      rules.RuleContext(t.Context),
		}
		if err := rule.Validate(); err != nil {
			return nil, nil, err
		}
		ruleRepo.AddTabooRules(rule)
	}
	for _, t := range doc.TransformationRules {
		ruleRepo.AddTransformationRules(rules.CulturalTransformationRule{
			ID:                 t.ID,
			Market:             t.Market,
			AssetType:          t.AssetType,
			TransformationType: ctypes.TransformationType(t.TransformationType),
			Rule:               t.Rule,
			Example: rules.TransformationExample{
				Before:    t.Example.Before,
				After:     t.Example.After,
				Rationale: t.Example.Rationale,
			},
			Priority:        ctypes.RulePriority(t.Priority),
			EstimatedEffort: t.EstimatedEffort,
		})
	}

	termRepo := NewTerminologyRepository()
	for _, e := range doc.TerminologyEntries {
		termRepo.AddEntries(terminology.Entry{
			ID:               e.ID,
			BrandID:          e.BrandID,
			TherapeuticArea:  e.TherapeuticArea,
			SourceTerms:      e.SourceTerms,
			PreferredTerm:    e.PreferredTerm,
			Definition:       e.Definition,
			RegulatoryStatus: ctypes.RegulatoryStatus(e.RegulatoryStatus),
			UsageGuidelines:  e.UsageGuidelines,
			ContextualUsage: terminology.ContextualUsage{
				PatientFacing:       e.ContextualUsage.PatientFacing,
				HCPFacing:           e.ContextualUsage.HCPFacing,
				MarketingMaterials:  e.ContextualUsage.MarketingMaterials,
				RegulatoryDocuments: e.ContextualUsage.RegulatoryDocuments,
			},
			CulturalConsiderations: e.CulturalConsiderations,
			RelatedTerms:           e.RelatedTerms,
		})
	}

	return ruleRepo, termRepo, nil
}
