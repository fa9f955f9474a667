package validation

import (
	"fmt"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/domain/rules"
	ctypes "github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/pkg/types/compliance"
)

// TextTransformation is one rewrite instruction in a playbook, with the
// curated example rendered as a "before → after" string.
type TextTransformation struct {
	Rule    string `json:"rule"`
	Example string `json:"example,omitempty"`
}

// StructuralChange is one layout/structure instruction with its effort
// estimate.
type StructuralChange struct {
	Change          string `json:"change"`
	EstimatedEffort string `json:"estimated_effort,omitempty"`
}

// TransformationPlaybook is the structured adaptation plan for moving
// content from a source market to a target market.
type TransformationPlaybook struct {
	SourceMarket          string               `json:"source_market"`
	TargetMarket          string               `json:"target_market"`
	AssetType             string               `json:"asset_type"`
	TextTransformations   []TextTransformation `json:"text_transformations"`
	VisualTransformations []string             `json:"visual_transformations"`
	StructuralChanges     []StructuralChange   `json:"structural_changes"`
	CulturalNotes         []string             `json:"cultural_notes"`
}

// BuildPlaybook partitions the target market's transformation rules by
// type and merges in visual guidance and cultural notes.  Tone rules join
// the text bucket since both prescribe copy rewrites.
func BuildPlaybook(
	sourceMarket, targetMarket, assetType string,
	transformations []rules.CulturalTransformationRule,
	guidelines rules.VisualCulturalGuidelines,
	profile rules.MarketProfile,
) TransformationPlaybook {
	pb := TransformationPlaybook{
		SourceMarket:          sourceMarket,
		TargetMarket:          targetMarket,
		AssetType:             assetType,
		TextTransformations:   []TextTransformation{},
		VisualTransformations: []string{},
		StructuralChanges:     []StructuralChange{},
		CulturalNotes:         []string{},
	}

	for _, rule := range transformations {
		switch rule.TransformationType {
		case ctypes.TransformText, ctypes.TransformTone:
			pb.TextTransformations = append(pb.TextTransformations, TextTransformation{
				Rule:    rule.Rule,
				Example: rule.RenderedExample(),
			})
		case ctypes.TransformVisual:
			pb.VisualTransformations = append(pb.VisualTransformations, rule.Rule)
		case ctypes.TransformStructure:
			pb.StructuralChanges = append(pb.StructuralChanges, StructuralChange{
				Change:          rule.Rule,
				EstimatedEffort: rule.EstimatedEffort,
			})
		}
	}

	// Visual guidance from the curated market tables: color avoidances
	// with their cultural reasoning, then the layout hierarchy note.
	for _, color := range guidelines.Colors.Avoid {
		note := guidelines.Colors.Notes[color]
		if note == "" {
			pb.VisualTransformations = append(pb.VisualTransformations,
				fmt.Sprintf("Avoid %s in %s", color, targetMarket))
			continue
		}
		pb.VisualTransformations = append(pb.VisualTransformations,
			fmt.Sprintf("Avoid %s in %s: %s", color, targetMarket, note))
	}
	if guidelines.Layout.Hierarchy != "" {
		pb.VisualTransformations = append(pb.VisualTransformations,
			"Layout hierarchy: "+guidelines.Layout.Hierarchy)
	}

	pb.CulturalNotes = append(pb.CulturalNotes, profile.CulturalNotes...)
	return pb
}
